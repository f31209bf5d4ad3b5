package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContactInfo(t *testing.T) {
	cases := []struct {
		name       string
		transcript string
		wantPhone  string
		wantEmail  string
	}{
		{
			name:       "dashed phone",
			transcript: "Hi, please call me back at 555-123-4567 about my order",
			wantPhone:  "555-123-4567",
		},
		{
			name:       "dotted phone",
			transcript: "my number is 555.123.4567 thanks",
			wantPhone:  "555.123.4567",
		},
		{
			name:       "bare ten digits",
			transcript: "reach me on 5551234567 anytime",
			wantPhone:  "5551234567",
		},
		{
			name:       "email only",
			transcript: "send the invoice to jane.doe@example.com please",
			wantEmail:  "jane.doe@example.com",
		},
		{
			name:       "both phone and email",
			transcript: "I'm at 555-123-4567 or john+work@corp.io",
			wantPhone:  "555-123-4567",
			wantEmail:  "john+work@corp.io",
		},
		{
			name:       "first phone wins",
			transcript: "call 555-111-2222 or 555-333-4444",
			wantPhone:  "555-111-2222",
		},
		{
			name:       "no contact data",
			transcript: "just wanted to say the product is great",
		},
		{
			name:       "empty transcript",
			transcript: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			contact := ExtractContactInfo(tc.transcript)
			assert.Equal(t, tc.wantPhone, contact.Phone)
			assert.Equal(t, tc.wantEmail, contact.Email)
		})
	}
}
