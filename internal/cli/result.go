package cli

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	rpcerrors "github.com/gezibash/mullvad-rpc/pkg/errors"
)

// Result is a single-message result with optional details.
// Created via Output.Result().
type Result struct {
	out     *Output
	meta    Meta
	message string
	tone    Tone
	details []kvPair
}

// With adds a detail key-value pair.
func (r *Result) With(key string, value any) *Result {
	r.details = append(r.details, kvPair{key: key, value: value})
	return r
}

// WithTone highlights the message in text output.
func (r *Result) WithTone(tone Tone) *Result {
	r.tone = tone
	return r
}

// Render outputs the result in the configured format.
func (r *Result) Render() error {
	return r.out.Render(r)
}

// Meta returns the metadata.
func (r *Result) Meta() Meta {
	return r.meta
}

// RenderText writes the message and indented details.
func (r *Result) RenderText(w io.Writer, s Styles) error {
	if _, err := fmt.Fprintln(w, s.Status(r.message, r.tone)); err != nil {
		return err
	}
	return renderDetails(w, s, r.details)
}

// RenderJSON returns message and details as object.
func (r *Result) RenderJSON() any {
	result := make(map[string]any, len(r.details)+1)
	result["message"] = r.message
	for _, d := range r.details {
		result[toJSONKey(d.key)] = d.value
	}
	return result
}

// RenderMarkdown writes the result in markdown.
func (r *Result) RenderMarkdown(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "**%s**\n\n", r.message); err != nil {
		return err
	}
	for _, d := range r.details {
		if _, err := fmt.Fprintf(w, "- **%s:** %s\n", d.key, formatMarkdownValue(d.value)); err != nil {
			return err
		}
	}
	return nil
}

// Error is a failed command. Its code is derived from the error: client
// sentinels map to short names, daemon failures to their gRPC status code.
// Created via Output.Error().
type Error struct {
	out     *Output
	meta    Meta
	err     error
	code    string
	details []kvPair
}

// With adds a detail key-value pair.
func (e *Error) With(key string, value any) *Error {
	e.details = append(e.details, kvPair{key: key, value: value})
	return e
}

// Render outputs the error in the configured format.
func (e *Error) Render() error {
	return e.out.Render(e)
}

// Meta returns the metadata.
func (e *Error) Meta() Meta {
	return e.meta
}

func (e *Error) label() string {
	if e.code == "" {
		return "Error"
	}
	return "Error [" + e.code + "]"
}

// RenderText writes the error.
func (e *Error) RenderText(w io.Writer, s Styles) error {
	if _, err := fmt.Fprintf(w, "%s: %v\n", s.Bad.Render(e.label()), e.err); err != nil {
		return err
	}
	return renderDetails(w, s, e.details)
}

// RenderJSON returns the error, its code when known and any details.
func (e *Error) RenderJSON() any {
	result := map[string]any{"error": e.err.Error()}
	if e.code != "" {
		result["code"] = e.code
	}
	for _, d := range e.details {
		result[toJSONKey(d.key)] = d.value
	}
	return result
}

// RenderMarkdown writes the error as a blockquote followed by details.
func (e *Error) RenderMarkdown(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "> **%s:** %v\n", e.label(), e.err); err != nil {
		return err
	}
	for i, d := range e.details {
		if i == 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "- %s: %s\n", d.key, formatValue(d.value)); err != nil {
			return err
		}
	}
	return nil
}

var sentinelCodes = []struct {
	err  error
	code string
}{
	{rpcerrors.ErrNoConnection, "no-connection"},
	{rpcerrors.ErrClosed, "closed"},
	{rpcerrors.ErrStaleAttempt, "stale-attempt"},
	{rpcerrors.ErrConnectTimeout, "connect-timeout"},
	{rpcerrors.ErrUntrustedEndpoint, "untrusted-endpoint"},
	{rpcerrors.ErrInvalidResponse, "invalid-response"},
	{rpcerrors.ErrStreamEnded, "stream-ended"},
	{rpcerrors.ErrCustomListExists, "custom-list-exists"},
	{rpcerrors.ErrInvalidInput, "invalid-input"},
	{context.DeadlineExceeded, "timeout"},
	{context.Canceled, "canceled"},
}

// ErrorCode names the failure class of err, or "" for plain errors.
func ErrorCode(err error) string {
	for _, sc := range sentinelCodes {
		if rpcerrors.Is(err, sc.err) {
			return sc.code
		}
	}
	if st, ok := status.FromError(err); ok && st.Code() != codes.OK {
		return st.Code().String()
	}
	return ""
}

func renderDetails(w io.Writer, s Styles, details []kvPair) error {
	width := 0
	for _, d := range details {
		width = max(width, len(d.key)+1)
	}
	for _, d := range details {
		key := s.Key.Render(fmt.Sprintf("%-*s", width, d.key+":"))
		if _, err := fmt.Fprintf(w, "  %s  %s\n", key, formatValue(d.value)); err != nil {
			return err
		}
	}
	return nil
}
