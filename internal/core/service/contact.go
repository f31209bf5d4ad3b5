package service

import (
	"regexp"

	"stoik.com/voicedesk/internal/core/domain"
)

// Ordered: the first pattern that matches wins.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
	regexp.MustCompile(`\+?1[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`),
	regexp.MustCompile(`\b\d{10}\b`),
}

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// ExtractContactInfo pulls the first phone number and email address out of a
// transcript. Absence of a match is a normal outcome; both fields may come
// back empty.
func ExtractContactInfo(transcript string) domain.ContactInfo {
	var contact domain.ContactInfo

	for _, pattern := range phonePatterns {
		if match := pattern.FindString(transcript); match != "" {
			contact.Phone = match
			break
		}
	}

	contact.Email = emailPattern.FindString(transcript)

	return contact
}
