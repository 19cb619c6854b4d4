package sanitize_test

import (
	"testing"

	"github.com/mmnete/bimasoft-backend/internal/shared/sanitize"
	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
	}{
		"empty":            {"", ""},
		"plain":            {"Acme Insurance", "Acme Insurance"},
		"trims":            {"  Acme  ", "Acme"},
		"strips script":    {"Acme<script>alert(1)</script>", "Acme"},
		"strips tags":      {"<b>Jubilee</b> Insurance", "Jubilee Insurance"},
		"keeps ampersands": {"Tom & Jerry Brokers", "Tom & Jerry Brokers"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, sanitize.Text(tc.in))
		})
	}
}

func TestStrings_DropsEmpty(t *testing.T) {
	got := sanitize.Strings([]string{"motor", "<i></i>", " health "})

	assert.Equal(t, []string{"motor", "health"}, got)
}

func TestMap(t *testing.T) {
	got := sanitize.Map(map[string]string{"phone_number": "<b>0712345678</b>"})

	assert.Equal(t, map[string]string{"phone_number": "0712345678"}, got)
	assert.Nil(t, sanitize.Map(nil))
}
