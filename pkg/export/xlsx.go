package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/yeisme/codestat/pkg/models"
)

// XLSX 工作簿的四个固定分片：这些 XML 声明一个单工作表的工作簿，
// 通过关系 id rId1 指向工作表分片，必须保持逐字节良构
const (
	xlsxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
		`<Default Extension="xml" ContentType="application/xml"/>` +
		`<Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>` +
		`<Override PartName="/xl/worksheets/sheet1.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>` +
		`</Types>`

	xlsxRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>` +
		`</Relationships>`

	xlsxWorkbook = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` +
		`<sheets><sheet name="CodeStats" sheetId="1" r:id="rId1"/></sheets>` +
		`</workbook>`

	xlsxWorkbookRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n" +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>` +
		`</Relationships>`
)

// RenderXLSX 把结果渲染成 XLSX 兼容的 ZIP 字节流
// 工作表与 CSV 共用列集合：一行表头加每语言一行数据
func RenderXLSX(result *models.AnalysisResult) []byte {
	var z zipContainer
	z.AddFile("[Content_Types].xml", []byte(xlsxContentTypes))
	z.AddFile("_rels/.rels", []byte(xlsxRootRels))
	z.AddFile("xl/workbook.xml", []byte(xlsxWorkbook))
	z.AddFile("xl/_rels/workbook.xml.rels", []byte(xlsxWorkbookRels))
	z.AddFile("xl/worksheets/sheet1.xml", buildSheetXML(result))
	return z.Bytes()
}

// buildSheetXML 生成 xl/worksheets/sheet1.xml
func buildSheetXML(result *models.AnalysisResult) []byte {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	buf.WriteString(`<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">`)
	buf.WriteString(`<sheetData>`)

	writeRow(&buf, 1, columnHeaders(result))
	rowIdx := 2
	for _, lang := range sortedLanguages(result) {
		writeRow(&buf, rowIdx, rowValues(lang, result.LanguageSummaries[lang], result))
		rowIdx++
	}

	buf.WriteString(`</sheetData>`)
	buf.WriteString(`</worksheet>`)
	return buf.Bytes()
}

// writeRow 输出一行单元格数字写成数值单元格，其余写成内联字符串
func writeRow(buf *bytes.Buffer, row int, values []string) {
	fmt.Fprintf(buf, `<row r="%d">`, row)
	for col, v := range values {
		ref := columnName(col) + strconv.Itoa(row)
		if _, err := strconv.ParseFloat(v, 64); err == nil {
			fmt.Fprintf(buf, `<c r="%s"><v>%s</v></c>`, ref, v)
		} else {
			fmt.Fprintf(buf, `<c r="%s" t="inlineStr"><is><t>%s</t></is></c>`, ref, escapeXML(v))
		}
	}
	buf.WriteString(`</row>`)
}

// columnName 把 0 起始的列号编码为 A,B,…,Z,AA,… 的基 26 字母形式
func columnName(col int) string {
	name := ""
	for col >= 0 {
		name = string(rune('A'+col%26)) + name
		col = col/26 - 1
	}
	return name
}

// escapeXML 做最小必需的 XML 转义
func escapeXML(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
