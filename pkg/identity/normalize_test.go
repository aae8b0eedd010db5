package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/identity"
)

func TestNormalize_CandidateResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		wantID  int64
	}{
		{
			name:    "user nested at data.user",
			payload: `{"status":"success","data":{"user":{"id":1,"username":"alice"}}}`,
			wantID:  1,
		},
		{
			name:    "user at data",
			payload: `{"status":"success","data":{"id":2,"username":"bob"}}`,
			wantID:  2,
		},
		{
			name:    "user at top-level user key",
			payload: `{"user":{"id":3,"username":"carol"}}`,
			wantID:  3,
		},
		{
			name:    "root object is the user",
			payload: `{"id":4,"username":"dave"}`,
			wantID:  4,
		},
		{
			name:    "non-object data falls through to root",
			payload: `{"data":"nope","id":5,"username":"erin"}`,
			wantID:  5,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := identity.Normalize([]byte(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestNormalize_Rejection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
	}{
		{"empty input", ``},
		{"not json", `not json at all`},
		{"json scalar", `"hello"`},
		{"json array", `[1,2,3]`},
		{"null", `null`},
		{"object without id", `{"username":"ghost"}`},
		{"id is a float", `{"id":3.5,"username":"half"}`},
		{"id is negative", `{"id":-1,"username":"neg"}`},
		{"id is a non-numeric string", `{"id":"abc","username":"x"}`},
		{"id string with sign", `{"id":"+42","username":"x"}`},
		{"user_id is a string", `{"user_id":"42"}`},
		{"nested candidate without id", `{"data":{"user":{"username":"nested"}}}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := identity.Normalize([]byte(tt.payload))
			assert.ErrorIs(t, err, identity.ErrInvalidPayload)
		})
	}
}

func TestNormalize_IDCoercion(t *testing.T) {
	t.Parallel()

	t.Run("numeric string id", func(t *testing.T) {
		t.Parallel()

		got, err := identity.Normalize([]byte(`{"user":{"id":"42","username":"bob"}}`))
		require.NoError(t, err)
		assert.Equal(t, int64(42), got.ID)
	})

	t.Run("alternate user_id field", func(t *testing.T) {
		t.Parallel()

		got, err := identity.Normalize([]byte(`{"user_id":9,"username":"alt"}`))
		require.NoError(t, err)
		assert.Equal(t, int64(9), got.ID)
	})

	t.Run("float id falls back to user_id", func(t *testing.T) {
		t.Parallel()

		got, err := identity.Normalize([]byte(`{"id":1.5,"user_id":7,"username":"x"}`))
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.ID)
	})

	t.Run("zero id is valid", func(t *testing.T) {
		t.Parallel()

		got, err := identity.Normalize([]byte(`{"id":0,"username":"zero"}`))
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.ID)
	})
}

func TestNormalize_UsernameFallbackChain(t *testing.T) {
	t.Parallel()

	t.Run("provider login convention", func(t *testing.T) {
		t.Parallel()

		got, err := identity.Normalize([]byte(`{"data":{"user":{"id":7,"login":"octocat"}}}`))
		require.NoError(t, err)
		assert.Equal(t, identity.Identity{
			ID:       7,
			Username: "octocat",
		}, got)
	})

	t.Run("username preferred over login", func(t *testing.T) {
		t.Parallel()

		got, err := identity.Normalize([]byte(`{"id":1,"username":"real","login":"gh"}`))
		require.NoError(t, err)
		assert.Equal(t, "real", got.Username)
	})

	t.Run("first token of display name", func(t *testing.T) {
		t.Parallel()

		got, err := identity.Normalize([]byte(`{"user":{"id":3,"name":"Ada Lovelace","email":"a@x.com"}}`))
		require.NoError(t, err)
		assert.Equal(t, "Ada", got.Username)
		assert.Equal(t, "Ada", got.FirstName)
		assert.Equal(t, "Lovelace", got.LastName)
		assert.Equal(t, "a@x.com", got.Email)
	})

	t.Run("synthesized from id", func(t *testing.T) {
		t.Parallel()

		got, err := identity.Normalize([]byte(`{"id":12}`))
		require.NoError(t, err)
		assert.Equal(t, "user12", got.Username)
	})

	t.Run("blank name synthesizes from id", func(t *testing.T) {
		t.Parallel()

		got, err := identity.Normalize([]byte(`{"id":12,"name":"   "}`))
		require.NoError(t, err)
		assert.Equal(t, "user12", got.Username)
	})
}

func TestNormalize_NameSplitting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		payload   string
		wantFirst string
		wantLast  string
	}{
		{
			name:      "explicit fields used independently",
			payload:   `{"id":1,"username":"u","first_name":"Grace"}`,
			wantFirst: "Grace",
			wantLast:  "",
		},
		{
			name:      "explicit last without first",
			payload:   `{"id":1,"username":"u","last_name":"Hopper"}`,
			wantFirst: "",
			wantLast:  "Hopper",
		},
		{
			name:      "explicit fields win over display name",
			payload:   `{"id":1,"username":"u","first_name":"Grace","name":"Someone Else"}`,
			wantFirst: "Grace",
			wantLast:  "",
		},
		{
			name:      "multi-part last name",
			payload:   `{"id":1,"username":"u","name":"Ada King Lovelace"}`,
			wantFirst: "Ada",
			wantLast:  "King Lovelace",
		},
		{
			name:      "single token name",
			payload:   `{"id":1,"username":"u","name":"Plato"}`,
			wantFirst: "Plato",
			wantLast:  "",
		},
		{
			name:      "no name data at all",
			payload:   `{"id":1,"username":"u"}`,
			wantFirst: "",
			wantLast:  "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := identity.Normalize([]byte(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.wantFirst, got.FirstName)
			assert.Equal(t, tt.wantLast, got.LastName)
		})
	}
}

func TestNormalize_OptionalFields(t *testing.T) {
	t.Parallel()

	t.Run("avatar provider aliases", func(t *testing.T) {
		t.Parallel()

		got, err := identity.Normalize([]byte(`{"id":1,"username":"u","avatar_url":"https://img.example.com/a.png"}`))
		require.NoError(t, err)
		assert.Equal(t, "https://img.example.com/a.png", got.Avatar)

		got, err = identity.Normalize([]byte(`{"id":1,"username":"u","profile_photo_url":"https://img.example.com/b.png"}`))
		require.NoError(t, err)
		assert.Equal(t, "https://img.example.com/b.png", got.Avatar)
	})

	t.Run("empty avatar falls through to alias", func(t *testing.T) {
		t.Parallel()

		got, err := identity.Normalize([]byte(`{"id":1,"username":"u","avatar":"","avatar_url":"https://img.example.com/c.png"}`))
		require.NoError(t, err)
		assert.Equal(t, "https://img.example.com/c.png", got.Avatar)
	})

	t.Run("non-string email degrades to empty", func(t *testing.T) {
		t.Parallel()

		got, err := identity.Normalize([]byte(`{"id":1,"username":"u","email":42}`))
		require.NoError(t, err)
		assert.Empty(t, got.Email)
	})

	t.Run("timestamps pass through", func(t *testing.T) {
		t.Parallel()

		got, err := identity.Normalize([]byte(`{"id":1,"username":"u","created_at":"2024-01-01T00:00:00Z","updated_at":"2024-02-01T00:00:00Z"}`))
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01T00:00:00Z", got.CreatedAt)
		assert.Equal(t, "2024-02-01T00:00:00Z", got.UpdatedAt)
	})
}

func TestIdentity_Helpers(t *testing.T) {
	t.Parallel()

	t.Run("verified when timestamp present", func(t *testing.T) {
		t.Parallel()
		assert.True(t, identity.Identity{EmailVerifiedAt: "2024-01-01T00:00:00Z"}.IsVerified())
		assert.False(t, identity.Identity{}.IsVerified())
	})

	t.Run("plan defaults to starter", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, identity.DefaultPlan, identity.Identity{}.Plan())
		assert.Equal(t, "enterprise", identity.Identity{CurrentPlan: "enterprise"}.Plan())
	})

	t.Run("full name tolerates missing parts", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Ada Lovelace", identity.Identity{FirstName: "Ada", LastName: "Lovelace"}.FullName())
		assert.Equal(t, "Ada", identity.Identity{FirstName: "Ada"}.FullName())
		assert.Equal(t, "Lovelace", identity.Identity{LastName: "Lovelace"}.FullName())
		assert.Empty(t, identity.Identity{}.FullName())
	})
}
