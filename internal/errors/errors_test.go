package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(ErrUnknownRuntime, ExitUser),
			want: "unknown runtime",
		},
		{
			name: "with wrapped error",
			err:  NewExitError(fmt.Errorf("loading config: %w", ErrInvalidConfig), ExitUser),
			want: "loading config: invalid configuration",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
		{
			name: "success code with error",
			err:  NewExitError(errors.New("unexpected"), ExitSuccess),
			want: "unexpected",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ExitError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	tests := []struct {
		name       string
		err        *ExitError
		wantTarget error
		wantIs     bool
	}{
		{
			name:       "unwrap to sentinel error",
			err:        NewExitError(ErrNoActiveVersion, ExitUser),
			wantTarget: ErrNoActiveVersion,
			wantIs:     true,
		},
		{
			name:       "unwrap through wrapped error",
			err:        NewExitError(Wrap(ErrMissingVersion, "install"), ExitUser),
			wantTarget: ErrMissingVersion,
			wantIs:     true,
		},
		{
			name:       "no match for different sentinel",
			err:        NewExitError(ErrUnknownRuntime, ExitUser),
			wantTarget: ErrInvalidConfig,
			wantIs:     false,
		},
		{
			name:       "nil underlying error",
			err:        NewExitError(nil, ExitUser),
			wantTarget: ErrUnknownRuntime,
			wantIs:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.wantTarget); got != tt.wantIs {
				t.Errorf("Is() = %v, want %v", got, tt.wantIs)
			}
		})
	}
}

func TestTaxonomy_As(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{
			name: "resolution",
			err:  Wrap(&ResolutionError{Runtime: "node", Version: "v1.0.0", Platform: "plan9/amd64"}, "resolving"),
			check: func(err error) bool {
				var target *ResolutionError
				return As(err, &target) && target.Platform == "plan9/amd64"
			},
		},
		{
			name: "download keeps cause",
			err:  &DownloadError{Runtime: "go", Version: "1.22.0", URL: "https://example.test/x", Err: cause},
			check: func(err error) bool {
				var target *DownloadError
				return As(err, &target) && Is(err, cause)
			},
		},
		{
			name: "relocation keeps cause",
			err:  &RelocationError{Runtime: "bun", Version: "v1.1.0", Attempts: 3, Err: cause},
			check: func(err error) bool {
				var target *RelocationError
				return As(err, &target) && target.Attempts == 3 && Is(err, cause)
			},
		},
		{
			name: "format wrapped by planner",
			err:  Wrapf(&FormatError{Kind: "zip", Err: cause}, "node %s", "v1.0.0"),
			check: func(err error) bool {
				var target *FormatError
				return As(err, &target) && target.Kind == "zip"
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.check(tt.err) {
				t.Errorf("taxonomy match failed for %v", tt.err)
			}
		})
	}
}

func TestLayoutError_Error(t *testing.T) {
	err := &LayoutError{Runtime: "node", Version: "v18.17.1", Expected: "node-v18.17.1-linux-x64", Found: []string{"weird", "other"}}
	want := `node v18.17.1: archive has no top-level "node-v18.17.1-linux-x64" (found weird, other)`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	empty := &LayoutError{Runtime: "go", Version: "1.22.0", Expected: "go"}
	if got := empty.Error(); got != `go 1.22.0: archive has no top-level "go" (found nothing)` {
		t.Errorf("Error() = %q", got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantCode       int
		wantSuggestion string
	}{
		{
			name:           "resolution is a user error",
			err:            &ResolutionError{Runtime: "python", Version: "2.7", Platform: "linux/amd64"},
			wantCode:       ExitUser,
			wantSuggestion: "Run: mlvm python list-remote",
		},
		{
			name:           "not installed suggests install",
			err:            Wrap(&NotInstalledError{Runtime: "node", Version: "v20.0.0"}, "activating"),
			wantCode:       ExitUser,
			wantSuggestion: "Run: mlvm node install v20.0.0",
		},
		{
			name:           "permission carries remediation",
			err:            &PermissionError{Runtime: "go", Remediation: "enable developer mode"},
			wantCode:       ExitSystem,
			wantSuggestion: "enable developer mode",
		},
		{
			name:     "invalid version is a user error",
			err:      Mark(Newf("version %q is reserved", "current"), ErrInvalidVersion),
			wantCode: ExitUser,
		},
		{
			name:     "download is a system error",
			err:      &DownloadError{Err: errors.New("404")},
			wantCode: ExitSystem,
		},
		{
			name:     "unknown is a system error",
			err:      errors.New("disk on fire"),
			wantCode: ExitSystem,
		},
		{
			name:           "existing exit error passes through",
			err:            NewUserError(errors.New("bad flag"), "fix it"),
			wantCode:       ExitUser,
			wantSuggestion: "fix it",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", got.Code, tt.wantCode)
			}
			if tt.wantSuggestion != "" && got.Suggestion != tt.wantSuggestion {
				t.Errorf("Suggestion = %q, want %q", got.Suggestion, tt.wantSuggestion)
			}
		})
	}

	if Classify(nil) != nil {
		t.Error("Classify(nil) should be nil")
	}
}
