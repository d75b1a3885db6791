// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package emit

import (
	"io"
	"text/template"
)

// ParseFormat parses a custom message format and probes it against a
// representative record. Probing rejects templates which parse but
// reference fields outside the published set, so a bad format fails
// at configuration time instead of falling back silently at emission.
func ParseFormat(format string) (*template.Template, error) {
	tmpl, err := template.New("message").Parse(format)
	if err != nil {
		return nil, err
	}

	probe := templateData{
		Kind:      "failure",
		Namespace: "svc",
		Message:   "probe",
		Function:  "svc.Func",
		File:      "svc.go",
		Line:      1,
	}
	err = tmpl.Execute(io.Discard, probe)
	if err != nil {
		return nil, err
	}
	return tmpl, nil
}
