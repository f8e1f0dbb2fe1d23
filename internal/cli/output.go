package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Mapping validation failed
	ExitCommandError = 2 // Bad input: unreadable files, invalid predicates
)

// Error codes reported in CLI output.
const (
	ErrCodeMappings  = "E001"
	ErrCodePredicate = "E002"
	ErrCodeCompile   = "E003"
	ErrCodeValidate  = "E004"
	ErrCodeUsage     = "E005"
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Err     error
	Message string
	Code    int
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps err with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Errors that are not an ExitError map to ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter writes results as text or JSON.
type OutputFormatter struct {
	Writer io.Writer
	Format string
}

// CLIResponse is the JSON envelope for all command output.
type CLIResponse struct {
	Data   any       `json:"data,omitempty"`
	Error  *CLIError `json:"error,omitempty"`
	Status string    `json:"status"`
}

// CLIError describes a failed command in JSON output.
type CLIError struct {
	Details any    `json:"details,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON reports whether output should be JSON encoded.
func (f *OutputFormatter) JSON() bool {
	return f.Format == "json"
}

// Success writes data. Text output is delegated to text, which may be nil.
func (f *OutputFormatter) Success(data any, text func(w io.Writer)) error {
	if f.JSON() {
		return f.encode(CLIResponse{Status: "ok", Data: data})
	}
	if text != nil {
		text(f.Writer)
		return nil
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error writes a failure and returns an ExitError for the caller to propagate.
func (f *OutputFormatter) Error(exitCode int, code string, err error, details any) error {
	if f.JSON() {
		_ = f.encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: err.Error(), Details: details},
		})
	} else {
		fmt.Fprintf(f.Writer, "Error [%s]: %v\n", code, err)
		if list, ok := details.([]string); ok {
			for _, d := range list {
				fmt.Fprintf(f.Writer, "  - %s\n", d)
			}
		}
	}
	return WrapExitError(exitCode, code, err)
}

func (f *OutputFormatter) encode(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
