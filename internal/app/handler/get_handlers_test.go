package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/sstmlab/nfc-redirect/internal/app/service"
	"github.com/sstmlab/nfc-redirect/internal/mocks"
	"github.com/sstmlab/nfc-redirect/internal/storage"
)

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestResolve_Redirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResolver := mocks.NewMockResolverIface(ctrl)
	handler := NewGet(mockResolver, nil, nil, nil, zap.NewNop())

	tests := []struct {
		name         string
		resolution   *service.Resolution
		err          error
		expectedCode int
		location     string
		cookieName   string
	}{
		{
			name:         "fallback redirect with query token",
			resolution:   &service.Resolution{Location: "https://shop.example.com/item?NFT_JWT=tok", Credential: &service.Credential{Kind: service.CredentialQuery, Name: service.QueryToken, Value: "tok"}},
			expectedCode: http.StatusFound,
			location:     "https://shop.example.com/item?NFT_JWT=tok",
		},
		{
			name: "registration redirect with subject cookie",
			resolution: &service.Resolution{
				Location:   "https://id.example.org/user/register",
				Credential: &service.Credential{Kind: service.CredentialCookie, Name: service.SubjectCookie, Value: "tok", Domain: "example.org"},
			},
			expectedCode: http.StatusFound,
			location:     "https://id.example.org/user/register",
			cookieName:   service.SubjectCookie,
		},
		{
			name:         "rewrite redirect without credential",
			resolution:   &service.Resolution{Location: "https://id.example.org/user/alice"},
			expectedCode: http.StatusFound,
			location:     "https://id.example.org/user/alice",
		},
		{
			name:         "invalid token",
			err:          service.ErrInvalidToken,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "expired token",
			err:          service.ErrTokenExpired,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "unknown subject",
			err:          storage.ErrNotFound,
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "storage down",
			err:          storage.ErrUnavailable,
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockResolver.EXPECT().Resolve(gomock.Any(), "sometoken").Return(tt.resolution, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/resolve/sometoken", nil)
			req = withURLParam(req, "token", "sometoken")
			w := httptest.NewRecorder()

			handler.Resolve(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedCode, resp.StatusCode)
			if tt.location != "" {
				assert.Equal(t, tt.location, resp.Header.Get("Location"))
			}

			cookies := resp.Cookies()
			if tt.cookieName == "" {
				assert.Empty(t, cookies)
			} else {
				require.Len(t, cookies, 1)
				assert.Equal(t, tt.cookieName, cookies[0].Name)
				assert.True(t, cookies[0].HttpOnly)
				assert.True(t, cookies[0].Secure)
				assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
				assert.Equal(t, "example.org", cookies[0].Domain)
			}
		})
	}
}

func TestResolve_ClaimCookieCarriesMaxAge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResolver := mocks.NewMockResolverIface(ctrl)
	handler := NewGet(mockResolver, nil, nil, nil, zap.NewNop())

	mockResolver.EXPECT().Resolve(gomock.Any(), "sometoken").Return(&service.Resolution{
		Location: "https://id.example.org/user/alice",
		Credential: &service.Credential{
			Kind:   service.CredentialCookie,
			Name:   service.ClaimCookie,
			Value:  "tok",
			Domain: "example.org",
			TTL:    service.ClaimTokenTTL,
		},
	}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/resolve/sometoken", nil), "token", "sometoken")
	w := httptest.NewRecorder()

	handler.Resolve(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, service.ClaimCookie, cookies[0].Name)
	assert.Equal(t, int(service.ClaimTokenTTL.Seconds()), cookies[0].MaxAge)
}

func TestCollectible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGuard := mocks.NewMockClaimGuardIface(ctrl)
	handler := NewGet(nil, mockGuard, nil, nil, zap.NewNop())

	mockGuard.EXPECT().Collectible(gomock.Any(), "abc").
		Return(&service.CollectibleRef{Contract: "0xBBB", TokenID: 7, ChainID: 1}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/redirects/abc/collectible", nil), "subject", "abc")
	w := httptest.NewRecorder()

	handler.Collectible(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t,
		`{"message":"Collectible found","data":{"address":"0xBBB","tokenId":7,"chainId":1}}`,
		w.Body.String())
}

func TestCollectible_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGuard := mocks.NewMockClaimGuardIface(ctrl)
	handler := NewGet(nil, mockGuard, nil, nil, zap.NewNop())

	mockGuard.EXPECT().Collectible(gomock.Any(), "abc").Return(nil, storage.ErrNotFound)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/redirects/abc/collectible", nil), "subject", "abc")
	w := httptest.NewRecorder()

	handler.Collectible(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUserByHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserDirectory(ctrl)
	handler := NewGet(nil, nil, mockUsers, nil, zap.NewNop())

	mockUsers.EXPECT().FindUserByHandle(gomock.Any(), "alice").
		Return(&storage.UserRecord{ID: "user-id", NFC: "abc", Username: "alice", Address: "0xAAA"}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/users/alice", nil), "handle", "alice")
	w := httptest.NewRecorder()

	handler.UserByHandle(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestPingDB(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockRedirectStore(ctrl)
	handler := NewGet(nil, nil, nil, mockStore, zap.NewNop())

	mockStore.EXPECT().PingContext(gomock.Any()).Return(nil)

	w := httptest.NewRecorder()
	handler.PingDB(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
