package controllers_test

import (
	"testing"

	"planiverse/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserReturnsRecord(t *testing.T) {
	token := openSession(t, "user-1", "Alice")

	resp := doRequest(t, "GET", "/api/users/user-1", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	user := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "Alice", user["name"])
	assert.Equal(t, float64(1), user["currentDay"])
	assert.Equal(t, []interface{}{}, user["badges"])
}

func TestGetUserNotFound(t *testing.T) {
	token, err := utils.GenerateSessionToken("user-ghost", cfg)
	require.NoError(t, err)

	resp := doRequest(t, "GET", "/api/users/user-ghost", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAddBadgeAndRepeat(t *testing.T) {
	token := openSession(t, "user-2", "Alice")

	body := map[string]interface{}{
		"badge": map[string]string{"id": "night-owl", "name": "Night Owl", "color": "#4B0082"},
	}

	resp := doRequest(t, "POST", "/api/users/user-2/badges", token, body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Badge added successfully", decodeBody(t, resp)["message"])

	resp = doRequest(t, "POST", "/api/users/user-2/badges", token, body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Badge already earned", decodeBody(t, resp)["message"])

	resp = doRequest(t, "GET", "/api/users/user-2", token, nil)
	user := decodeBody(t, resp)["data"].(map[string]interface{})
	badges := user["badges"].([]interface{})
	require.Len(t, badges, 1)
	badge := badges[0].(map[string]interface{})
	assert.Equal(t, "night-owl", badge["id"])
	assert.NotEmpty(t, badge["earnedAt"])
}
