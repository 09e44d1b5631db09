package common

import "testing"

func TestValidateNotEmpty(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "wikidump/", false},
		{"invalid - empty", "", true},
		{"invalid - whitespace only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNotEmpty(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNotEmpty() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateEntryName(t *testing.T) {
	tests := []struct {
		name    string
		entry   string
		wantErr bool
	}{
		{"valid file", "a.txt", false},
		{"valid dotfile", ".hidden", false},
		{"valid unicode", "Zürich_(city)", false},
		{"invalid - empty", "", true},
		{"invalid - space", "my file.txt", true},
		{"invalid - tab", "a\tb", true},
		{"invalid - newline", "a\nb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntryName(tt.entry)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEntryName() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
