package filename

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "plain name",
			in:       "photo.png",
			expected: "photo.png",
		},
		{
			name:     "unix traversal",
			in:       "../../etc/passwd.png",
			expected: "passwd.png",
		},
		{
			name:     "windows traversal",
			in:       `..\..\windows\evil.jpg`,
			expected: "evil.jpg",
		},
		{
			name:     "spaces to underscores",
			in:       "my summer photo.jpeg",
			expected: "my_summer_photo.jpeg",
		},
		{
			name:     "unsafe runes dropped",
			in:       "we|ird<na>me?.gif",
			expected: "weirdname.gif",
		},
		{
			name:     "dot only",
			in:       ".",
			expected: "",
		},
		{
			name:     "dot dot only",
			in:       "..",
			expected: "",
		},
		{
			name:     "hidden file loses leading dot",
			in:       ".htaccess",
			expected: "htaccess",
		},
		{
			name:     "empty",
			in:       "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Sanitize(tt.in)
			if result != tt.expected {
				t.Errorf("Sanitize(%q) = %q, expected %q", tt.in, result, tt.expected)
			}
		})
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"photo.PNG", "png"},
		{"photo.jpeg", "jpeg"},
		{"archive.tar.gz", "gz"},
		{"noext", ""},
		{"", ""},
	}

	for _, tt := range tests {
		result := Ext(tt.in)
		if result != tt.expected {
			t.Errorf("Ext(%q) = %q, expected %q", tt.in, result, tt.expected)
		}
	}
}
