// internal/app/app_test.go
package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixture = "##gff-version 3\n" +
	"chrI\ttest\tgene\t2\t4\t.\t+\t.\tID=g1;Name=dup\n" +
	"chrI\ttest\tgene\t2\t4\t.\t-\t.\tID=g2;Name=dup\n" +
	"chrI\ttest\tmRNA\t1\t8\t.\t+\t.\tID=m1\n" +
	"##FASTA\n" +
	">chrI test chromosome\n" +
	"ACGT\n" +
	"ACGT\n"

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.gff3")
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func runApp(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	code := Run(argv, &out, &errb)
	return code, out.String(), errb.String()
}

func TestExtractSingleMatch(t *testing.T) {
	path := writeFixture(t)
	code, out, errb := runApp(t, "extract", path, "gene", "ID", "g1")
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, errb)
	}
	if out != ">gene:ID:g1\nCGT\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestExtractMinusStrand(t *testing.T) {
	path := writeFixture(t)
	code, out, _ := runApp(t, "extract", path, "gene", "ID", "g2")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if out != ">gene:ID:g2\nACG\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestExtractWidthWraps(t *testing.T) {
	path := writeFixture(t)
	code, out, _ := runApp(t, "extract", "--width", "3", path, "mRNA", "ID", "m1")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if out != ">mRNA:ID:m1\nACG\nTAC\nGT\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestExtractNoMatch(t *testing.T) {
	path := writeFixture(t)
	code, out, _ := runApp(t, "extract", path, "gene", "ID", "zzz")
	if code != 0 {
		t.Fatalf("exit = %d, want 0 (no-match is informational by default)", code)
	}
	if out != "No features found for gene:ID=zzz\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestExtractNoMatchExitCode(t *testing.T) {
	path := writeFixture(t)
	code, _, _ := runApp(t, "extract", "--no-match-exit-code", "4", path, "gene", "ID", "zzz")
	if code != 4 {
		t.Fatalf("exit = %d, want 4", code)
	}
}

func TestExtractMultipleMatches(t *testing.T) {
	path := writeFixture(t)
	code, out, _ := runApp(t, "extract", path, "gene", "Name", "dup")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	want := "Warning: more than one feature found for gene:Name=dup\n" +
		">gene:Name:dup\nCGT\n" +
		">gene:Name:dup\nACG\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestExtractCoordsHeader(t *testing.T) {
	path := writeFixture(t)
	code, out, _ := runApp(t, "extract", "--coords", path, "gene", "ID", "g2")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if !strings.HasPrefix(out, ">gene:ID:g2 chrI:2-4(-)\n") {
		t.Errorf("stdout = %q", out)
	}
}

func TestExtractUnknownSequenceID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.gff3")
	content := "chrX\ttest\tgene\t1\t2\t.\t+\t.\tID=g1\n##FASTA\n>chrI\nACGT\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	code, _, errb := runApp(t, "extract", path, "gene", "ID", "g1")
	if code != 1 {
		t.Fatalf("exit = %d, want 1 (stderr = %s)", code, errb)
	}
}

func TestIndexAndLookupRoundtrip(t *testing.T) {
	path := writeFixture(t)
	dbPath := filepath.Join(t.TempDir(), "feat.db")

	code, out, errb := runApp(t, "index", path, dbPath)
	if code != 0 {
		t.Fatalf("index exit = %d, stderr = %s", code, errb)
	}
	if !strings.Contains(out, "Indexed 3 features and 1 sequences") {
		t.Errorf("index stdout = %q", out)
	}

	_, direct, _ := runApp(t, "extract", path, "gene", "ID", "g2")
	code, looked, errb := runApp(t, "lookup", dbPath, "gene", "ID", "g2")
	if code != 0 {
		t.Fatalf("lookup exit = %d, stderr = %s", code, errb)
	}
	if looked != direct {
		t.Errorf("lookup output %q differs from extract output %q", looked, direct)
	}
}

func TestLookupNoMatch(t *testing.T) {
	path := writeFixture(t)
	dbPath := filepath.Join(t.TempDir(), "feat.db")
	if code, _, _ := runApp(t, "index", path, dbPath); code != 0 {
		t.Fatal("index failed")
	}
	code, out, _ := runApp(t, "lookup", dbPath, "gene", "ID", "zzz")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if out != "No features found for gene:ID=zzz\n" {
		t.Errorf("stdout = %q", out)
	}
}

func TestStats(t *testing.T) {
	path := writeFixture(t)
	code, out, _ := runApp(t, "stats", path, "gene")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(out, "count\t2") || !strings.Contains(out, "mean_len\t3.00") {
		t.Errorf("stdout = %q", out)
	}
}

func TestUsageErrors(t *testing.T) {
	if code, _, _ := runApp(t, "extract", "only-a-file"); code != 2 {
		t.Errorf("missing args: exit = %d, want 2", code)
	}
	if code, _, _ := runApp(t, "frobnicate"); code != 2 {
		t.Errorf("unknown command: exit = %d, want 2", code)
	}
}

func TestHelp(t *testing.T) {
	code, out, _ := runApp(t, "--help")
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(out, "extract") || !strings.Contains(out, "lookup") {
		t.Errorf("usage output missing commands: %q", out)
	}
}
