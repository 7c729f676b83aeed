package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid email", "a@b.com", false},
		{"valid email with subdomain", "user@mail.example.org", false},
		{"empty", "", true},
		{"missing at", "a.b.com", true},
		{"missing domain", "a@", true},
		{"spaces", "a b@c.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("longenough"))
}

func TestValidateChartName(t *testing.T) {
	assert.Error(t, ValidateChartName(""))
	assert.NoError(t, ValidateChartName("My chart"))

	long := make([]byte, MaxChartNameLen+1)
	for i := range long {
		long[i] = 'x'
	}
	assert.Error(t, ValidateChartName(string(long)))
}

func TestValidateBirthDate(t *testing.T) {
	assert.NoError(t, ValidateBirthDate("1990-04-12"))
	assert.Error(t, ValidateBirthDate(""))
	assert.Error(t, ValidateBirthDate("12.04.1990"))
	assert.Error(t, ValidateBirthDate("1990-13-40"))
}

func TestValidateBirthTime(t *testing.T) {
	tests := []struct {
		name    string
		time    string
		wantErr bool
	}{
		{"valid morning", "08:30", false},
		{"valid midnight", "00:00", false},
		{"valid last minute", "23:59", false},
		{"hours out of range", "24:00", true},
		{"minutes out of range", "12:60", true},
		{"no leading zero", "8:30", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBirthTime(tt.time)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCoordinates(t *testing.T) {
	assert.NoError(t, ValidateLatitude(55.7558))
	assert.Error(t, ValidateLatitude(91))
	assert.Error(t, ValidateLatitude(-91))

	assert.NoError(t, ValidateLongitude(37.6173))
	assert.Error(t, ValidateLongitude(181))
	assert.Error(t, ValidateLongitude(-181))
}
