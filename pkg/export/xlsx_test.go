package export

import (
	"archive/zip"
	"bytes"
	"hash/crc32"
	"io"
	"strings"
	"testing"
)

// 生产路径不使用归档库；测试用 archive/zip 回读验证中央目录
func readArchive(t *testing.T, data []byte) *zip.Reader {
	t.Helper()
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("central directory unreadable: %v", err)
	}
	return r
}

func Test_zipContainer_RoundTrip(t *testing.T) {
	var z zipContainer
	parts := map[string][]byte{
		"a.txt":       []byte("hello"),
		"dir/b.xml":   []byte("<b/>"),
		"empty.bin":   {},
		"dir/c/d.txt": []byte(strings.Repeat("x", 4096)),
	}
	for name, content := range parts {
		z.AddFile(name, content)
	}
	data := z.Bytes()

	r := readArchive(t, data)
	if len(r.File) != len(parts) {
		t.Fatalf("entry count %d want %d", len(r.File), len(parts))
	}
	for _, f := range r.File {
		want, ok := parts[f.Name]
		if !ok {
			t.Fatalf("unexpected entry %s", f.Name)
		}
		if f.Method != zip.Store {
			t.Fatalf("%s: must be stored, got method %d", f.Name, f.Method)
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("%s: open: %v", f.Name, err)
		}
		got, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("%s: read: %v", f.Name, err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("%s: content mismatch", f.Name)
		}
		// 每个条目的 CRC 必须与对解包字节重新计算的值一致
		if f.CRC32 != crc32.ChecksumIEEE(got) {
			t.Fatalf("%s: crc %08x want %08x", f.Name, f.CRC32, crc32.ChecksumIEEE(got))
		}
	}
}

func Test_crc32Of_MatchesStdlib(t *testing.T) {
	for _, s := range []string{"", "a", "hello world", "\x00\x01\x02"} {
		if got, want := crc32Of([]byte(s)), crc32.ChecksumIEEE([]byte(s)); got != want {
			t.Fatalf("%q: %08x want %08x", s, got, want)
		}
	}
}

func Test_RenderXLSX_Parts(t *testing.T) {
	data := RenderXLSX(sampleResult(true, false))
	r := readArchive(t, data)

	wantParts := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"xl/workbook.xml",
		"xl/_rels/workbook.xml.rels",
		"xl/worksheets/sheet1.xml",
	}
	if len(r.File) != len(wantParts) {
		t.Fatalf("part count %d want %d", len(r.File), len(wantParts))
	}
	for i, f := range r.File {
		if f.Name != wantParts[i] {
			t.Fatalf("part %d is %s want %s", i, f.Name, wantParts[i])
		}
	}
}

func Test_RenderXLSX_Sheet(t *testing.T) {
	data := RenderXLSX(sampleResult(false, false))
	r := readArchive(t, data)

	var sheet string
	for _, f := range r.File {
		if f.Name == "xl/worksheets/sheet1.xml" {
			rc, err := f.Open()
			if err != nil {
				t.Fatalf("open sheet: %v", err)
			}
			b, _ := io.ReadAll(rc)
			_ = rc.Close()
			sheet = string(b)
		}
	}
	if sheet == "" {
		t.Fatal("sheet part missing")
	}

	// 表头行 + 两种语言 = 三行
	if strings.Count(sheet, "<row ") != 3 {
		t.Fatalf("row count: %s", sheet)
	}
	if !strings.Contains(sheet, `<c r="A1" t="inlineStr"><is><t>Language</t></is></c>`) {
		t.Fatalf("header cell missing: %s", sheet)
	}
	if !strings.Contains(sheet, `<c r="A2" t="inlineStr"><is><t>Java</t></is></c>`) {
		t.Fatalf("java cell missing: %s", sheet)
	}
	if !strings.Contains(sheet, `<c r="B2"><v>1</v></c>`) {
		t.Fatalf("numeric cell missing: %s", sheet)
	}
}

func Test_columnName(t *testing.T) {
	cases := map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 52: "BA", 701: "ZZ", 702: "AAA"}
	for col, want := range cases {
		if got := columnName(col); got != want {
			t.Fatalf("%d => %s want %s", col, got, want)
		}
	}
}
