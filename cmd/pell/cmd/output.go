package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

var errUnknownFormat = errors.New("unknown output format")

// result is anything a subcommand prints. Text renders the plain form;
// json and yaml use the struct tags.
type result interface {
	Text() string
}

func validFormat(f string) error {
	switch f {
	case "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("%q (want text, json or yaml): %w", f, errUnknownFormat)
}

func render(w io.Writer, format string, r result) error {
	switch format {
	case "text":
		_, err := fmt.Fprintln(w, r.Text())
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	return validFormat(format)
}

type expandResult struct {
	N      uint64   `json:"n" yaml:"n"`
	A0     uint64   `json:"a0" yaml:"a0"`
	Period []uint64 `json:"period" yaml:"period"`
}

func (r expandResult) Text() string {
	if len(r.Period) == 0 {
		return fmt.Sprintf("sqrt(%d) = %d (perfect square)", r.N, r.A0)
	}
	parts := make([]string, len(r.Period))
	for i, a := range r.Period {
		parts[i] = fmt.Sprint(a)
	}
	return fmt.Sprintf("sqrt(%d) = [%d; (%s)] period=%d", r.N, r.A0, strings.Join(parts, ","), len(r.Period))
}

type convergentResult struct {
	N           uint64 `json:"n" yaml:"n"`
	K           int    `json:"k" yaml:"k"`
	Numerator   string `json:"numerator" yaml:"numerator"`
	Denominator string `json:"denominator" yaml:"denominator"`
}

func (r convergentResult) Text() string {
	return fmt.Sprintf("convergent %d of sqrt(%d) = %s/%s", r.K, r.N, r.Numerator, r.Denominator)
}

type pair struct {
	X string `json:"x" yaml:"x"`
	Y string `json:"y" yaml:"y"`
}

type solveResult struct {
	D   uint64 `json:"d" yaml:"d"`
	RHS int    `json:"rhs" yaml:"rhs"`
	pair `yaml:",inline"`
}

func (r solveResult) Text() string {
	return fmt.Sprintf("x^2 - %d*y^2 = %d: x=%s y=%s", r.D, r.RHS, r.X, r.Y)
}

type rootsResult struct {
	D         uint64 `json:"d" yaml:"d"`
	RHS       int    `json:"rhs" yaml:"rhs"`
	Solutions []pair `json:"solutions" yaml:"solutions"`
}

func (r rootsResult) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "x^2 - %d*y^2 = %d", r.D, r.RHS)
	for i, s := range r.Solutions {
		fmt.Fprintf(&b, "\n%3d: x=%s y=%s", i+1, s.X, s.Y)
	}
	return b.String()
}

type searchResult struct {
	Limit uint64 `json:"limit" yaml:"limit"`
	D     uint64 `json:"d" yaml:"d"`
	pair  `yaml:",inline"`
}

func (r searchResult) Text() string {
	return fmt.Sprintf("d<=%d with largest fundamental x: d=%d x=%s y=%s", r.Limit, r.D, r.X, r.Y)
}
