package showlocations

import "testing"

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    RunOptions
		wantErr bool
	}{
		{
			name: "input with default format",
			opts: RunOptions{Input: "issue.json", Format: "show-issue"},
		},
		{
			name: "taint format",
			opts: RunOptions{Input: "taint.json", Format: "taint"},
		},
		{
			name: "sarif format",
			opts: RunOptions{Input: "report.sarif", Format: "sarif"},
		},
		{
			name:    "unknown format",
			opts:    RunOptions{Input: "issue.json", Format: "xml"},
			wantErr: true,
		},
		{
			name:    "no input and no server",
			opts:    RunOptions{Format: "show-issue"},
			wantErr: true,
		},
		{
			name: "server with key",
			opts: RunOptions{ServerURL: "https://sonar.example.com", IssueKey: "AX-1"},
		},
		{
			name:    "server without key",
			opts:    RunOptions{ServerURL: "https://sonar.example.com"},
			wantErr: true,
		},
		{
			name:    "server and input are exclusive",
			opts:    RunOptions{ServerURL: "https://sonar.example.com", IssueKey: "AX-1", Input: "issue.json"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOptions(&tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}
