package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateIBANRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request ValidateIBANRequest
		wantErr string
	}{
		{name: "valid electronic", request: ValidateIBANRequest{IBAN: "DE54550200008837813212"}},
		{name: "valid print format", request: ValidateIBANRequest{IBAN: "DE54 5502 0000 8837 8132 12"}},
		{name: "empty", request: ValidateIBANRequest{}, wantErr: "iban: cannot be blank."},
		{name: "blank", request: ValidateIBANRequest{IBAN: "   "}, wantErr: "iban: must not be blank."},
		{
			name:    "control character",
			request: ValidateIBANRequest{IBAN: "DE54\x005502"},
			wantErr: "iban: must contain only printable characters.",
		},
		{
			name:    "too long",
			request: ValidateIBANRequest{IBAN: strings.Repeat("1", 129)},
			wantErr: "iban: the length must be between 1 and 128.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestBatchValidateRequest_Validate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		req := BatchValidateRequest{IBANs: []string{"DE54550200008837813212", ""}}
		assert.NoError(t, req.Validate())
	})

	t.Run("Error_Empty", func(t *testing.T) {
		req := BatchValidateRequest{}
		assert.EqualError(t, req.Validate(), "ibans: cannot be blank.")
	})

	t.Run("Error_ElementTooLong", func(t *testing.T) {
		req := BatchValidateRequest{IBANs: []string{"DE54", strings.Repeat("1", 129)}}
		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ibans")
	})

	t.Run("Error_ElementNotPrintable", func(t *testing.T) {
		req := BatchValidateRequest{IBANs: []string{"DE54", "DE\x07"}}
		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "printable")
	})
}

func TestGenerateIBANRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request GenerateIBANRequest
		wantErr string
	}{
		{name: "valid", request: GenerateIBANRequest{Country: "NL", BBAN: "ABNA4353368141"}},
		{name: "empty bban", request: GenerateIBANRequest{Country: "NO"}},
		{name: "missing country", request: GenerateIBANRequest{BBAN: "1"}, wantErr: "country: cannot be blank."},
		{name: "lower case country left to lookup", request: GenerateIBANRequest{Country: "nl", BBAN: "1"}},
		{
			name:    "control character in country",
			request: GenerateIBANRequest{Country: "N\x00", BBAN: "1"},
			wantErr: "country: must contain only printable characters.",
		},
		{
			name:    "control character in bban",
			request: GenerateIBANRequest{Country: "NL", BBAN: "ABNA\x1b4353"},
			wantErr: "bban: must contain only printable characters.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
