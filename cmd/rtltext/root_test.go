package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RTLTEXT_DEFAULT_DIR", "")
	t.Setenv("RTLTEXT_THRESHOLD", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Args(t *testing.T) {
	out, err := runCmd(t, "", "מה קורה", "hello world")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if out != "rtl\nltr\n" {
		t.Errorf("output = %q, want %q", out, "rtl\nltr\n")
	}
}

func TestRootCmd_Stdin(t *testing.T) {
	out, err := runCmd(t, "שלום\n\nhello\n", "--default-dir", "rtl")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if out != "rtl\nrtl\nltr\n" {
		t.Errorf("output = %q, want %q", out, "rtl\nrtl\nltr\n")
	}
}

func TestRootCmd_Exclude(t *testing.T) {
	out, err := runCmd(t, "", "--exclude", "PLACEHOLDER", "PLACEHOLDERשלום")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if out != "rtl\n" {
		t.Errorf("output = %q, want rtl", out)
	}
}

func TestRootCmd_Threshold(t *testing.T) {
	out, err := runCmd(t, "", "-t", "0.5", "שלום abcd")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if out != "ltr\n" {
		t.Errorf("output = %q, want ltr", out)
	}
}

func TestRootCmd_ThresholdAboveOne(t *testing.T) {
	// RTL 字符在去掉占位文本之前统计，比例可以超过 1：8/2 = 4
	out, err := runCmd(t, "", "-t", "1.5", "-x", "שלוםשלום", "שלוםשלוםab")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if out != "rtl\n" {
		t.Errorf("output = %q, want rtl", out)
	}
}

func TestRootCmd_Explain(t *testing.T) {
	out, err := runCmd(t, "", "--explain", "שלום @user http://x.co")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for _, want := range []string{"rtl", "rule=ratio", "effective=4", "@user", "http://x.co"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestRootCmd_InvalidFlags(t *testing.T) {
	if _, err := runCmd(t, "", "--default-dir", "up", "x"); err == nil {
		t.Error("invalid --default-dir should fail")
	}
	if _, err := runCmd(t, "", "--threshold", "-0.1", "x"); err == nil {
		t.Error("negative --threshold should fail")
	}
}

func TestRootCmd_EnvDefaults(t *testing.T) {
	t.Setenv("RTLTEXT_DEFAULT_DIR", "rtl")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{""})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if out.String() != "rtl\n" {
		t.Errorf("output = %q, want rtl", out.String())
	}
}

func TestLoadEnv_Invalid(t *testing.T) {
	t.Setenv("RTLTEXT_DEFAULT_DIR", "")
	t.Setenv("RTLTEXT_THRESHOLD", "abc")
	if _, err := loadEnv(); err == nil {
		t.Error("loadEnv() should fail on a non-numeric threshold")
	}
}
