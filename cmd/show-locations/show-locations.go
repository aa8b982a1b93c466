package showlocations

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/scanlens/scanlens/internal/codefile"
	"github.com/scanlens/scanlens/internal/git"
	"github.com/scanlens/scanlens/internal/issue"
	"github.com/scanlens/scanlens/internal/locations"
	"github.com/scanlens/scanlens/internal/remote"
	internalsarif "github.com/scanlens/scanlens/internal/sarif"
	"github.com/scanlens/scanlens/pkg/shared/config"
	"github.com/scanlens/scanlens/pkg/shared/files"
	"github.com/scanlens/scanlens/pkg/shared/logger"
)

// RunOptions holds flags for the show-locations command.
type RunOptions struct {
	Input        string `json:"input,omitempty"`
	Format       string `json:"format,omitempty"`
	Workspace    string `json:"workspace,omitempty"`
	ConnectionID string `json:"connection_id,omitempty"`
	ServerURL    string `json:"server_url,omitempty"`
	IssueKey     string `json:"issue_key,omitempty"`
	Token        string `json:"token,omitempty"`
	Output       string `json:"output,omitempty"`
}

// commandPayload is the editor command envelope written to the output.
type commandPayload struct {
	Command string            `json:"command"`
	Params  []locations.Param `json:"params"`
}

var (
	AppConfig *config.Config
	opts      RunOptions

	exampleShowLocationsUsage = `  # Reconcile a server "show issue" request stored as JSON
  scanlens show-locations --input issue.json --format show-issue --connection my-server

  # Reconcile a taint vulnerability record, resolving the workspace from the current repo
  scanlens show-locations --input taint.json --format taint --connection my-server

  # Reconcile every finding of a SARIF report against a source tree
  scanlens show-locations --input report.sarif --format sarif --workspace /path/to/source

  # Fetch the issue from a server by key instead of reading a file
  scanlens show-locations --server-url https://sonar.example.com --issue-key AX-123 --connection my-server`

	// ShowLocationsCmd reconciles a recorded issue against the working copy
	// and emits the "show all locations" payload.
	ShowLocationsCmd = &cobra.Command{
		Use:                   "show-locations [--input PATH --format show-issue|taint|sarif] [--server-url URL --issue-key KEY] [--workspace PATH] [--connection ID]",
		Short:                 "Build the show-all-locations payload for a recorded issue",
		Example:               exampleShowLocationsUsage,
		SilenceUsage:          false,
		DisableFlagsInUseLine: true,
		RunE:                  runShowLocations,
	}
)

func init() {
	ShowLocationsCmd.Flags().StringVar(&opts.Input, "input", "", "path to the recorded issue (JSON or SARIF)")
	ShowLocationsCmd.Flags().StringVar(&opts.Format, "format", "show-issue", "input format: show-issue, taint or sarif")
	ShowLocationsCmd.Flags().StringVar(&opts.Workspace, "workspace", "", "workspace folder used to resolve relative paths")
	ShowLocationsCmd.Flags().StringVar(&opts.ConnectionID, "connection", "", "identifier of the originating server connection")
	ShowLocationsCmd.Flags().StringVar(&opts.ServerURL, "server-url", "", "fetch the issue from this server instead of --input")
	ShowLocationsCmd.Flags().StringVar(&opts.IssueKey, "issue-key", "", "issue key to fetch from the server")
	ShowLocationsCmd.Flags().StringVar(&opts.Token, "token", "", "authentication token for the server")
	ShowLocationsCmd.Flags().StringVar(&opts.Output, "output", "", "write the payload to this file instead of stdout")
}

// Init wires config into this command.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runShowLocations is the main execution function for the show-locations command.
func runShowLocations(cmd *cobra.Command, args []string) error {
	if err := validateOptions(&opts); err != nil {
		return err
	}

	lg := logger.NewLogger(AppConfig, "show-locations")

	params, err := buildParams(lg, &opts)
	if err != nil {
		return err
	}

	payload := commandPayload{
		Command: locations.CommandID,
		Params:  params,
	}
	return writePayload(&payload, opts.Output)
}

// buildParams produces the display parameters from whichever source the
// flags selected. One file cache is shared across everything built in this
// invocation.
func buildParams(lg hclog.Logger, opts *RunOptions) ([]locations.Param, error) {
	cache := codefile.NewCache()

	if opts.ServerURL != "" {
		client := remote.NewClient(lg, AppConfig, opts.ConnectionID, opts.ServerURL, opts.Token)
		lg.Debug("fetching issue from server", "url", opts.ServerURL, "key", opts.IssueKey)
		req, err := client.FetchIssue(opts.IssueKey)
		if err != nil {
			return nil, err
		}
		return []locations.Param{locations.ParamsFromShowIssue(req, client.ConnectionID(), cache)}, nil
	}

	inputPath, err := files.ExpandPath(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("resolve input path: %w", err)
	}
	if err := files.ValidatePath(inputPath); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	switch opts.Format {
	case "show-issue":
		req, err := readShowIssue(inputPath)
		if err != nil {
			return nil, err
		}
		return []locations.Param{locations.ParamsFromShowIssue(req, opts.ConnectionID, cache)}, nil

	case "taint":
		taint, err := readTaint(inputPath)
		if err != nil {
			return nil, err
		}
		if taint.WorkspaceFolderURI == "" {
			taint.WorkspaceFolderURI, err = resolveWorkspaceURI(lg, opts.Workspace)
			if err != nil {
				return nil, err
			}
		}
		return []locations.Param{locations.ParamsFromTaint(taint, opts.ConnectionID, cache)}, nil

	case "sarif":
		report, err := internalsarif.LoadReport(inputPath)
		if err != nil {
			return nil, err
		}
		reqs := internalsarif.ShowIssueRequests(report, opts.Workspace)
		lg.Debug("converted sarif report", "results", len(reqs))
		params := make([]locations.Param, 0, len(reqs))
		for i := range reqs {
			params = append(params, locations.ParamsFromShowIssue(&reqs[i], opts.ConnectionID, cache))
		}
		return params, nil

	default:
		return nil, fmt.Errorf("unknown format %q, expected show-issue, taint or sarif", opts.Format)
	}
}

func readShowIssue(path string) (*issue.ShowIssueRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read issue file: %w", err)
	}
	var req issue.ShowIssueRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parse issue file %q: %w", path, err)
	}
	return &req, nil
}

func readTaint(path string) (*issue.TaintVulnerability, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taint file: %w", err)
	}
	var taint issue.TaintVulnerability
	if err := json.Unmarshal(data, &taint); err != nil {
		return nil, fmt.Errorf("parse taint file %q: %w", path, err)
	}
	return &taint, nil
}

// resolveWorkspaceURI turns the --workspace flag into a folder URI, falling
// back to the git repository enclosing the current directory.
func resolveWorkspaceURI(lg hclog.Logger, workspace string) (string, error) {
	if workspace != "" {
		expanded, err := files.ExpandPath(workspace)
		if err != nil {
			return "", fmt.Errorf("resolve workspace path: %w", err)
		}
		return codefile.PathToURI(expanded), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determine working directory: %w", err)
	}
	uri, err := git.WorkspaceFolderURI(cwd)
	if err != nil {
		return "", err
	}
	lg.Debug("discovered workspace folder", "uri", uri)
	return uri, nil
}

func writePayload(payload *commandPayload, outputPath string) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	if outputPath == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("write payload to %q: %w", outputPath, err)
	}
	return nil
}
