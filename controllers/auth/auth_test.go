package authController

import (
	"bytes"
	"crh/config"
	"crh/database"
	"crh/models"
	authValidator "crh/validators/auth"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	name := fmt.Sprintf("authtest%d", atomic.AddInt64(&testDBCounter, 1))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.EmailNotification{}))

	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{
		Port:      "3000",
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
	}

	app := fiber.New()
	app.Post("/auth/signup", authValidator.Signup(), Signup)
	app.Post("/auth/login", authValidator.Login(), Login)
	return app, db
}

func doPost(t *testing.T, app *fiber.App, path string, body map[string]interface{}) int {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestSignupAndDuplicateEmail(t *testing.T) {
	app, db := setupTestApp(t)

	body := map[string]interface{}{
		"name":     "New Learner",
		"email":    "learner@test.com",
		"password": "supersecret",
	}

	assert.Equal(t, fiber.StatusCreated, doPost(t, app, "/auth/signup", body))

	var user models.User
	require.NoError(t, db.Where("email = ?", "learner@test.com").First(&user).Error)
	assert.Equal(t, "user", user.Role)
	assert.NotEqual(t, "supersecret", user.Password)

	// Same email again conflicts
	assert.Equal(t, fiber.StatusConflict, doPost(t, app, "/auth/signup", body))
}

func TestSignupValidation(t *testing.T) {
	app, _ := setupTestApp(t)

	// Short password
	status := doPost(t, app, "/auth/signup", map[string]interface{}{
		"name":     "New Learner",
		"email":    "short@test.com",
		"password": "short",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	// Bad email
	status = doPost(t, app, "/auth/signup", map[string]interface{}{
		"name":     "New Learner",
		"email":    "not-an-email",
		"password": "supersecret",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestLoginBlocksAfterRepeatedFailures(t *testing.T) {
	app, db := setupTestApp(t)

	require.Equal(t, fiber.StatusCreated, doPost(t, app, "/auth/signup", map[string]interface{}{
		"name":     "Lockout Target",
		"email":    "lockout@test.com",
		"password": "correcthorse",
	}))

	wrong := map[string]interface{}{"email": "lockout@test.com", "password": "wrongpassword"}
	for i := 0; i < 3; i++ {
		assert.Equal(t, fiber.StatusUnauthorized, doPost(t, app, "/auth/login", wrong))
	}

	var user models.User
	require.NoError(t, db.Where("email = ?", "lockout@test.com").First(&user).Error)
	assert.True(t, user.IsBlocked)
	require.NotNil(t, user.BlockedUntil)

	// Even the right password is rejected while blocked
	right := map[string]interface{}{"email": "lockout@test.com", "password": "correcthorse"}
	assert.Equal(t, fiber.StatusUnauthorized, doPost(t, app, "/auth/login", right))
}

func TestLoginSuccess(t *testing.T) {
	app, _ := setupTestApp(t)

	require.Equal(t, fiber.StatusCreated, doPost(t, app, "/auth/signup", map[string]interface{}{
		"name":     "Happy Path",
		"email":    "happy@test.com",
		"password": "correcthorse",
	}))

	assert.Equal(t, fiber.StatusOK, doPost(t, app, "/auth/login", map[string]interface{}{
		"email":    "happy@test.com",
		"password": "correcthorse",
	}))
}
