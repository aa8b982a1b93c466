package showlocations

import "fmt"

// validateOptions checks flag combinations before doing any work.
func validateOptions(opts *RunOptions) error {
	if opts.ServerURL != "" {
		if opts.IssueKey == "" {
			return fmt.Errorf("--issue-key is required when --server-url is set")
		}
		if opts.Input != "" {
			return fmt.Errorf("--input and --server-url are mutually exclusive")
		}
		return nil
	}

	if opts.Input == "" {
		return fmt.Errorf("either --input or --server-url must be provided")
	}

	switch opts.Format {
	case "show-issue", "taint", "sarif":
		return nil
	default:
		return fmt.Errorf("unknown format %q, expected show-issue, taint or sarif", opts.Format)
	}
}
