package models

import "testing"

func TestIsValidMessageType(t *testing.T) {
	for _, valid := range []string{MessageTypeAnalysis, MessageTypeUserToProvider, MessageTypeProviderToUser} {
		if !IsValidMessageType(valid) {
			t.Errorf("expected %q to be valid", valid)
		}
	}
	for _, invalid := range []string{"", "ANALYSIS", "chitchat"} {
		if IsValidMessageType(invalid) {
			t.Errorf("expected %q to be invalid", invalid)
		}
	}
}
