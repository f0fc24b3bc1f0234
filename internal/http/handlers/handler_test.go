package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tap_legends/internal/service"

	"github.com/gin-gonic/gin"
)

func TestRespondGameError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		want int
	}{
		{service.ErrUserNotFound, http.StatusNotFound},
		{service.ErrTaskNotFound, http.StatusNotFound},
		{service.ErrNotEnoughEnergy, http.StatusForbidden},
		{service.ErrInvalidLevel, http.StatusForbidden},
		{service.ErrInsufficientBalance, http.StatusForbidden},
		{service.ErrBoosterMaxLevel, http.StatusForbidden},
		{service.ErrDailyTooSoon, http.StatusForbidden},
		{service.ErrTaskAlreadyClaimed, http.StatusForbidden},
		{service.ErrTasksAlreadySeeded, http.StatusForbidden},
		{service.ErrUnknownBooster, http.StatusForbidden},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondGameError(c, tc.err)

		if w.Code != tc.want {
			t.Errorf("%v: status = %d, want %d", tc.err, w.Code, tc.want)
		}
	}
}

func TestRespondGameErrorHidesInternals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondGameError(c, errors.New("dial tcp 10.0.0.3:5432: i/o timeout"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if body := w.Body.String(); body != `{"error":"internal error"}` {
		t.Fatalf("body = %s, leaked internal detail", body)
	}
}
