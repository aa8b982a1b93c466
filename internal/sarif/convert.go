// Package sarif converts SARIF reports into the remote-protocol issue shape
// so findings produced by SARIF-emitting scanners can be reconciled and
// displayed like any server-side issue.
package sarif

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/scanlens/scanlens/internal/issue"
)

// LoadReport reads and parses a SARIF report from disk.
func LoadReport(inputPath string) (*sarif.Report, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open sarif report: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read sarif report: %w", err)
	}

	var report sarif.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse sarif report: %w", err)
	}
	return &report, nil
}

// ShowIssueRequests flattens every result of the report into a request in
// source order. Results without a physical location are skipped; sourceRoot
// anchors relative artifact URIs.
func ShowIssueRequests(report *sarif.Report, sourceRoot string) []issue.ShowIssueRequest {
	var out []issue.ShowIssueRequest
	if report == nil {
		return out
	}
	for _, run := range report.Runs {
		for _, res := range run.Results {
			if req, ok := showIssueFromResult(res, sourceRoot); ok {
				out = append(out, req)
			}
		}
	}
	return out
}

func showIssueFromResult(res *sarif.Result, sourceRoot string) (issue.ShowIssueRequest, bool) {
	if res == nil || len(res.Locations) == 0 {
		return issue.ShowIssueRequest{}, false
	}
	path, rng, snippet, _ := extractLocation(res.Locations[0], sourceRoot)
	if path == "" {
		return issue.ShowIssueRequest{}, false
	}

	req := issue.ShowIssueRequest{
		Key:         uuid.NewString(),
		IdeFilePath: path,
		Message:     messageText(&res.Message),
		RuleKey:     ruleID(res),
		TextRange:   rng,
		CodeSnippet: snippet,
	}

	for _, cf := range res.CodeFlows {
		for _, tf := range cf.ThreadFlows {
			flow := issue.ShowIssueFlow{}
			for _, step := range tf.Locations {
				if step == nil || step.Location == nil {
					continue
				}
				stepPath, stepRange, stepSnippet, stepMessage := extractLocation(step.Location, sourceRoot)
				if stepPath == "" {
					continue
				}
				flow.Locations = append(flow.Locations, issue.ShowIssueLocation{
					IdeFilePath: stepPath,
					TextRange:   stepRange,
					CodeSnippet: stepSnippet,
					Message:     stepMessage,
				})
			}
			if len(flow.Locations) > 0 {
				req.Flows = append(req.Flows, flow)
			}
		}
	}
	return req, true
}

// extractLocation pulls the local path, text range, snippet and message out
// of one SARIF location. SARIF columns are 1-based while the issue model
// uses 0-based offsets.
func extractLocation(loc *sarif.Location, sourceRoot string) (string, *issue.TextRange, string, string) {
	if loc == nil || loc.PhysicalLocation == nil {
		return "", nil, "", ""
	}

	message := ""
	if loc.Message != nil {
		message = messageText(loc.Message)
	}

	art := loc.PhysicalLocation.ArtifactLocation
	if art == nil || art.URI == nil {
		return "", nil, "", message
	}
	path := localPath(*art.URI, sourceRoot)
	if path == "" {
		return "", nil, "", message
	}

	region := loc.PhysicalLocation.Region
	if region == nil {
		return path, nil, "", message
	}

	rng := &issue.TextRange{}
	if region.StartLine != nil {
		rng.StartLine = *region.StartLine
	}
	rng.EndLine = rng.StartLine
	if region.EndLine != nil {
		rng.EndLine = *region.EndLine
	}
	if region.StartColumn != nil && *region.StartColumn > 0 {
		rng.StartOffset = *region.StartColumn - 1
	}
	if region.EndColumn != nil && *region.EndColumn > 0 {
		rng.EndOffset = *region.EndColumn - 1
	}

	snippet := ""
	if region.Snippet != nil && region.Snippet.Text != nil {
		snippet = *region.Snippet.Text
	}
	return path, rng, snippet, message
}

// localPath normalizes a SARIF artifact URI to a local filesystem path,
// anchoring relative URIs at sourceRoot.
func localPath(rawURI, sourceRoot string) string {
	rawURI = strings.TrimSpace(rawURI)
	if rawURI == "" {
		return ""
	}
	osURI := filepath.FromSlash(strings.TrimPrefix(rawURI, "file://"))
	cleanURI := filepath.Clean(osURI)
	if filepath.IsAbs(cleanURI) || sourceRoot == "" {
		return cleanURI
	}
	return filepath.Join(sourceRoot, cleanURI)
}

func messageText(msg *sarif.Message) string {
	if msg == nil || msg.Text == nil {
		return ""
	}
	return *msg.Text
}

func ruleID(res *sarif.Result) string {
	if res.RuleID == nil {
		return ""
	}
	return *res.RuleID
}
