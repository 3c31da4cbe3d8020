package export

import (
	"bytes"
	"encoding/binary"
)

// zipEntry 记录一个已写入分片的元数据，供中央目录复用
type zipEntry struct {
	name   string
	crc    uint32
	size   uint32
	offset uint32
}

// zipContainer 手工组装 store-only 的 ZIP 字节流
//
// 每个分片写一条本地文件头（PK\x03\x04，版本 20，不压缩，
// compressedSize == uncompressedSize），随后是名字与内容原样字节；
// 所有分片之后写中央目录（每分片一条 PK\x01\x02，携带本地头偏移），
// 最后是 EOCD（PK\x05\x06）；所有整数一律小端
// 表格读取器对中央目录非常苛刻，每个数值字段都必须逐字节精确
type zipContainer struct {
	buf     bytes.Buffer
	entries []zipEntry
}

// AddFile 追加一个命名分片
func (z *zipContainer) AddFile(name string, content []byte) {
	entry := zipEntry{
		name:   name,
		crc:    crc32Of(content),
		size:   uint32(len(content)),
		offset: uint32(z.buf.Len()),
	}

	z.writeUint32(0x04034b50) // local file header signature
	z.writeUint16(20)         // version needed to extract
	z.writeUint16(0)          // general purpose bit flag
	z.writeUint16(0)          // compression method: store
	z.writeUint16(0)          // last mod file time
	z.writeUint16(0)          // last mod file date
	z.writeUint32(entry.crc)
	z.writeUint32(entry.size) // compressed size
	z.writeUint32(entry.size) // uncompressed size
	z.writeUint16(uint16(len(name)))
	z.writeUint16(0) // extra field length
	z.buf.WriteString(name)
	z.buf.Write(content)

	z.entries = append(z.entries, entry)
}

// Bytes 写出中央目录与 EOCD 并返回完整的归档字节流
func (z *zipContainer) Bytes() []byte {
	centralStart := uint32(z.buf.Len())

	for _, e := range z.entries {
		z.writeUint32(0x02014b50) // central directory signature
		z.writeUint16(20)         // version made by
		z.writeUint16(20)         // version needed to extract
		z.writeUint16(0)          // flags
		z.writeUint16(0)          // compression method
		z.writeUint16(0)          // mod time
		z.writeUint16(0)          // mod date
		z.writeUint32(e.crc)
		z.writeUint32(e.size)
		z.writeUint32(e.size)
		z.writeUint16(uint16(len(e.name)))
		z.writeUint16(0) // extra field length
		z.writeUint16(0) // comment length
		z.writeUint16(0) // disk number start
		z.writeUint16(0) // internal attributes
		z.writeUint32(0) // external attributes
		z.writeUint32(e.offset)
		z.buf.WriteString(e.name)
	}

	centralSize := uint32(z.buf.Len()) - centralStart

	z.writeUint32(0x06054b50) // end of central directory signature
	z.writeUint16(0)          // this disk
	z.writeUint16(0)          // central directory start disk
	z.writeUint16(uint16(len(z.entries)))
	z.writeUint16(uint16(len(z.entries)))
	z.writeUint32(centralSize)
	z.writeUint32(centralStart)
	z.writeUint16(0) // comment length

	return z.buf.Bytes()
}

func (z *zipContainer) writeUint16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	z.buf.Write(b[:])
}

func (z *zipContainer) writeUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	z.buf.Write(b[:])
}

// crcTable 是反射多项式 0xEDB88320 的 256 项预计算表
var crcTable = makeCRCTable()

func makeCRCTable() [256]uint32 {
	var table [256]uint32
	for i := range table {
		crc := uint32(i)
		for range 8 {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ 0xEDB88320
			} else {
				crc >>= 1
			}
		}
		table[i] = crc
	}
	return table
}

// crc32Of 计算标准 CRC-32（初值与终值异或均为 0xFFFFFFFF）
func crc32Of(data []byte) uint32 {
	crc := uint32(0xFFFFFFFF)
	for _, b := range data {
		crc = (crc >> 8) ^ crcTable[byte(crc)^b]
	}
	return crc ^ 0xFFFFFFFF
}
