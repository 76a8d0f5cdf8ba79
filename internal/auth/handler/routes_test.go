package handler_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokul-1998/flashdeck-service/internal/auth/handler"
)

func TestRegisterRoutes(t *testing.T) {
	authHandler, mockRepo, _ := newTestHandler(t)
	mockRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	tests := []struct {
		name        string
		method      string
		path        string
		body        string
		contentType string
		wantStatus  int
	}{
		// Minimal bodies: the routes exist and produce a domain
		// response rather than falling through to 404/405.
		{"register mounted", fiber.MethodPost, "/auth/register", `{}`, fiber.MIMEApplicationJSON, fiber.StatusBadRequest},
		{"login mounted", fiber.MethodPost, "/auth/login", "username=nobody%40example.com&password=x", fiber.MIMEApplicationForm, fiber.StatusUnauthorized},
		{"refresh is guarded", fiber.MethodPost, "/auth/refresh", `{}`, fiber.MIMEApplicationJSON, fiber.StatusUnauthorized},
		{"unknown route", fiber.MethodGet, "/auth/whoami", "", fiber.MIMEApplicationJSON, fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set(fiber.HeaderContentType, tt.contentType)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
