package middleware

import (
	"encoding/json"
	"github.com/KeivinIsmaili/cashcard/internal/auth"
	"github.com/KeivinIsmaili/cashcard/internal/hdl/http/utils"
	"github.com/KeivinIsmaili/cashcard/internal/hdl/validation"
	"github.com/KeivinIsmaili/cashcard/internal/model"
	"github.com/KeivinIsmaili/cashcard/tests/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"net/http"
	"net/http/httptest"
	"testing"
)

func principalEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			require.True(t, ok)
			utils.SuccessResponse(w, http.StatusOK, p.Name)
		},
	)
}

func TestBasicAuth(t *testing.T) {
	mock := gomock.NewController(t)
	defer mock.Finish()

	mau := mocks.NewMockVerifier(mock)
	handler := BasicAuth(mau, "cashcard")(principalEcho(t))

	sarah := &model.Principal{Name: "sarah1", Roles: []string{model.RoleCardOwner}}

	tests := []struct {
		name         string
		setAuth      func(r *http.Request)
		status       int
		mockExpect   func()
		expectedResp func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:       "MissingHeader",
			setAuth:    func(r *http.Request) {},
			status:     http.StatusUnauthorized,
			mockExpect: func() {},
			expectedResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, `Basic realm="cashcard"`, w.Header().Get("WWW-Authenticate"))
				res := &utils.ErrorResponse{}
				require.NoError(t, json.NewDecoder(w.Body).Decode(res))
				assert.Equal(t, ErrAuthHeaderIsMissing.Error(), res.Errors)
			},
		},
		{
			name: "BearerIsNotBasic",
			setAuth: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer token")
			},
			status:       http.StatusUnauthorized,
			mockExpect:   func() {},
			expectedResp: func(t *testing.T, w *httptest.ResponseRecorder) {},
		},
		{
			name: "EmptyPassword",
			setAuth: func(r *http.Request) {
				r.SetBasicAuth("sarah1", "")
			},
			status:     http.StatusUnauthorized,
			mockExpect: func() {},
			expectedResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				require.NoError(t, json.NewDecoder(w.Body).Decode(res))
				assert.Equal(t, validation.PasswordIsRequired.Error(), res.Errors)
			},
		},
		{
			name: "BadCredentials",
			setAuth: func(r *http.Request) {
				r.SetBasicAuth("BAD-USER", "abc123")
			},
			status: http.StatusUnauthorized,
			mockExpect: func() {
				mau.EXPECT().Authenticate("BAD-USER", "abc123").Return(nil, auth.ErrInvalidCredentials).Times(1)
			},
			expectedResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				res := &utils.ErrorResponse{}
				require.NoError(t, json.NewDecoder(w.Body).Decode(res))
				assert.Equal(t, auth.ErrInvalidCredentials.Error(), res.Errors)
			},
		},
		{
			name: "Success",
			setAuth: func(r *http.Request) {
				r.SetBasicAuth("sarah1", "abc123")
			},
			status: http.StatusOK,
			mockExpect: func() {
				mau.EXPECT().Authenticate("sarah1", "abc123").Return(sarah, nil).Times(1)
			},
			expectedResp: func(t *testing.T, w *httptest.ResponseRecorder) {
				var name string
				require.NoError(t, json.NewDecoder(w.Body).Decode(&name))
				assert.Equal(t, "sarah1", name)
			},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.mockExpect()

				req := httptest.NewRequest(http.MethodGet, "/cashcards", nil)
				tt.setAuth(req)

				w := httptest.NewRecorder()
				handler.ServeHTTP(w, req)

				assert.Equal(t, tt.status, w.Code)
				tt.expectedResp(t, w)
			},
		)
	}
}

func TestRequireRole(t *testing.T) {
	handler := RequireRole(model.RoleCardOwner)(principalEcho(t))

	tests := []struct {
		name      string
		principal *model.Principal
		status    int
	}{
		{
			name:   "NoPrincipal",
			status: http.StatusUnauthorized,
		},
		{
			name:      "NonOwner",
			principal: &model.Principal{Name: "hank-owns-no-cards", Roles: []string{"NON-OWNER"}},
			status:    http.StatusForbidden,
		},
		{
			name:      "NoRoles",
			principal: &model.Principal{Name: "nobody"},
			status:    http.StatusForbidden,
		},
		{
			name:      "CardOwner",
			principal: &model.Principal{Name: "kumar2", Roles: []string{model.RoleCardOwner}},
			status:    http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				req := httptest.NewRequest(http.MethodGet, "/cashcards", nil)
				if tt.principal != nil {
					req = req.WithContext(WithPrincipal(req.Context(), tt.principal))
				}

				w := httptest.NewRecorder()
				handler.ServeHTTP(w, req)
				assert.Equal(t, tt.status, w.Code)
			},
		)
	}
}
