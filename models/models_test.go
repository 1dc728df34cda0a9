package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.0.0", " ", "")
	assert.Equal(t, "v1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "Build version: v1.0.0\nBuild date: N/A\nBuild commit: N/A", info.String())

	var zero AppBuildInfo
	assert.Equal(t, "N/A", zero.BuildVersion())
}

func TestCatalogIsACopy(t *testing.T) {
	first := Catalog()
	assert.Len(t, first, 5)
	first[0].Name = "changed"

	assert.Equal(t, "Pack Sudeste Asiático", Catalog()[0].Name)
}

func TestSessionFullName(t *testing.T) {
	assert.Equal(t, "Ana", Session{Name: "Ana"}.FullName())
	assert.Equal(t, "Ana Ruiz Gil", Session{Name: "Ana", LastName: "Ruiz Gil"}.FullName())
}

func TestNormalizedForms(t *testing.T) {
	reg := RegistrationForm{Name: " Ana ", Username: " ana.r ", Password: " secreto "}.Normalized()
	assert.Equal(t, "Ana", reg.Name)
	assert.Equal(t, "ana.r", reg.Username)
	assert.Equal(t, " secreto ", reg.Password)

	pay := PaymentForm{CardType: " visa", CVV: " 123 "}.Normalized()
	assert.Equal(t, " visa", pay.CardType)
	assert.Equal(t, "123", pay.CVV)

	tip := TipForm{Title: "  t ", Description: "\td\n"}.Normalized()
	assert.Equal(t, TipForm{Title: "t", Description: "d"}, tip)
}

func TestStorageTierString(t *testing.T) {
	assert.Equal(t, "durable", DurableTier.String())
	assert.Equal(t, "ephemeral", EphemeralTier.String())
	assert.Equal(t, "unknown", StorageTier(0).String())
}

func TestUserIdentity(t *testing.T) {
	pic := "data:image/png;base64,AA=="
	u := User{Username: "ana.r", Password: "x", Name: "Ana", LastName: "Ruiz Gil", Email: "ana@example.com", ProfilePicture: &pic}
	s := u.Identity()
	assert.Equal(t, Session{Username: "ana.r", Name: "Ana", LastName: "Ruiz Gil", Email: "ana@example.com", ProfilePicture: &pic}, s)
}

func TestNewValidationResult(t *testing.T) {
	assert.True(t, NewValidationResult(nil).IsValid)
	res := NewValidationResult([]string{"x"})
	assert.False(t, res.IsValid)
	assert.Equal(t, []string{"x"}, res.Errors)
}

func TestRecordID_JSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RecordID
		out     string
		wantErr bool
	}{
		{name: "site timestamp", in: `1712345678901`, want: "1712345678901", out: `1712345678901`},
		{name: "uuid", in: `"0192d3c4-aaaa-7bbb-8ccc-000000000001"`, want: "0192d3c4-aaaa-7bbb-8ccc-000000000001", out: `"0192d3c4-aaaa-7bbb-8ccc-000000000001"`},
		{name: "quoted digits", in: `"42"`, want: "42", out: `42`},
		{name: "leading zero stays text", in: `"007"`, want: "007", out: `"007"`},
		{name: "null", in: `null`, want: "", out: `""`},
		{name: "object", in: `{"a":1}`, wantErr: true},
		{name: "bool", in: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id RecordID
			err := json.Unmarshal([]byte(tt.in), &id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)

			out, err := json.Marshal(id)
			require.NoError(t, err)
			assert.JSONEq(t, tt.out, string(out))
		})
	}
}
