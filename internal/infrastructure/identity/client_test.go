package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/recipify/v2/internal/ports/outbound"
	apperrors "github.com/recipify/v2/pkg/errors"
)

type ClientTestSuite struct {
	suite.Suite
}

func (suite *ClientTestSuite) newClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(server.URL, 5*time.Second, zap.NewNop()), server
}

func (suite *ClientTestSuite) TestFetchProfile() {
	suite.Run("ValidProfile_ShouldDecode", func() {
		// Arrange
		var gotAuth string
		client, server := suite.newClient(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			suite.Equal("/api/users/me", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"user-1","name":"Maria","email":"maria@example.com","avatar_url":"https://cdn.example.com/a.png","is_paid_status":true}`))
		})
		defer server.Close()

		// Act
		profile, err := client.FetchProfile(context.Background(), "token-abc")

		// Assert
		suite.Require().NoError(err)
		suite.Equal("Bearer token-abc", gotAuth)
		suite.Equal("user-1", profile.ID)
		suite.Equal("Maria", profile.Name)
		suite.True(profile.IsPaid)
	})

	suite.Run("UnpaidFlagPresent_ShouldNotBeTreatedAsMissing", func() {
		client, server := suite.newClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":"user-2","name":"Ben","is_paid_status":false}`))
		})
		defer server.Close()

		profile, err := client.FetchProfile(context.Background(), "t")

		suite.Require().NoError(err)
		suite.False(profile.IsPaid)
	})

	suite.Run("MissingName_ShouldBeHardFailure", func() {
		client, server := suite.newClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":"user-3","is_paid_status":false}`))
		})
		defer server.Close()

		_, err := client.FetchProfile(context.Background(), "t")

		suite.Require().Error(err)
		suite.Equal(apperrors.CodeProfileInvalid, apperrors.GetCode(err))
	})

	suite.Run("MissingPaidFlag_ShouldBeHardFailure", func() {
		client, server := suite.newClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":"user-4","name":"Ana"}`))
		})
		defer server.Close()

		_, err := client.FetchProfile(context.Background(), "t")

		suite.Require().Error(err)
		suite.Equal(apperrors.CodeProfileInvalid, apperrors.GetCode(err))
	})

	suite.Run("Unauthorized_ShouldMapToAuthError", func() {
		client, server := suite.newClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		defer server.Close()

		_, err := client.FetchProfile(context.Background(), "stale")

		suite.Require().Error(err)
		suite.Equal(apperrors.CodeUnauthorized, apperrors.GetCode(err))
	})

	suite.Run("ServerError_ShouldMapToExternalServiceError", func() {
		client, server := suite.newClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		defer server.Close()

		_, err := client.FetchProfile(context.Background(), "t")

		suite.Require().Error(err)
		suite.Equal(apperrors.CodeExternalServiceError, apperrors.GetCode(err))
	})

	suite.Run("MalformedBody_ShouldBeProfileInvalid", func() {
		client, server := suite.newClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		})
		defer server.Close()

		_, err := client.FetchProfile(context.Background(), "t")

		suite.Require().Error(err)
		suite.Equal(apperrors.CodeProfileInvalid, apperrors.GetCode(err))
	})
}

func (suite *ClientTestSuite) TestUserFromProfile() {
	suite.Run("FullProfile_ShouldMapDirectly", func() {
		u, err := UserFromProfile(&outbound.Profile{
			ID: "user-1", Name: "Maria", Email: "Maria@Example.com",
			AvatarURL: "https://cdn.example.com/a.png", IsPaid: true,
		})

		suite.Require().NoError(err)
		suite.Equal("Maria", u.Name())
		suite.Equal("maria@example.com", u.Email())
		suite.True(u.IsPaid())
	})

	suite.Run("EmptyName_ShouldFallBackToEmailPrefix", func() {
		u, err := UserFromProfile(&outbound.Profile{
			ID: "user-2", Email: "ben@example.com",
		})

		suite.Require().NoError(err)
		suite.Equal("ben", u.Name())
		suite.Contains(u.AvatarURL(), "username=ben")
	})

	suite.Run("NoNameNoEmail_ShouldUseDefaultName", func() {
		u, err := UserFromProfile(&outbound.Profile{ID: "user-3"})

		suite.Require().NoError(err)
		suite.Equal("Recipify User", u.Name())
	})
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
