package access

import (
	"errors"
	"testing"

	"github.com/cairncms/cairn/pkg/model"
)

func TestCredentialsMethod(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
		want  model.Method
	}{
		{"email", Credentials{Email: "ada@example.com"}, model.MethodEmail},
		{"username", Credentials{Username: "ada"}, model.MethodUsername},
		{"application", Credentials{Application: "billing-app"}, model.MethodApplication},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.creds.Method()
			if err != nil {
				t.Fatalf("Method() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Method() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCredentialsMethodRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
	}{
		{"none", Credentials{Password: "s3cret"}},
		{"email and username", Credentials{Email: "a@b.c", Username: "a"}},
		{"all three", Credentials{Email: "a@b.c", Username: "a", Application: "app"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.creds.Method()
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Errorf("Method() error = %v, want ValidationError", err)
			}
		})
	}
}
