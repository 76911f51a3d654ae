// Package zipfile implements a zip archive reader: central-directory
// walk plus raw DEFLATE inflate, grounded on spec.md §4.3 (itself a
// direct port of liborcus's src/parser/zip_archive.cpp).
package zipfile

import (
	"compress/flate"
	"encoding/binary"
	"io"
)

const (
	sigCentralDirEnd   = 0x06054b50
	sigCentralDirEntry = 0x02014b50
	maxCommentSize     = 0xffff
	centralDirEndSize  = 22
)

// CompressMethod mirrors spec.md §4.3's two supported methods.
type CompressMethod uint16

const (
	Stored   CompressMethod = 0
	Deflated CompressMethod = 8
)

// Entry is one central-directory record, indexed by filename.
type Entry struct {
	Filename           string
	VersionMadeBy      uint16
	VersionNeeded      uint16
	Flags              uint16
	CompressMethod     CompressMethod
	LastModifiedTime   uint16
	LastModifiedDate   uint16
	CRC32              uint32
	CompressedSize     uint32
	UncompressedSize   uint32
	DiskID             uint16
	AttributesInternal uint16
	AttributesExternal uint32
	LocalHeaderOffset  uint32
}

// Archive reads a zip package over a random-access byte stream. It
// locates the central directory on Load and serves individual entries
// on demand via ReadFileEntry.
type Archive struct {
	stream     io.ReaderAt
	streamSize int64

	centralDirPos int64
	entries       []Entry
	byName        map[string]int
}

// New wraps a random-access stream of the given total size.
func New(stream io.ReaderAt, size int64) *Archive {
	return &Archive{stream: stream, streamSize: size, byName: make(map[string]int)}
}

// cursor is a sticky-error absolute-offset reader over the archive's
// stream, in the style of the teacher's classfile.reader: every read
// method is a no-op once err is set, and the caller checks err once at
// the end of a record instead of after every field.
type cursor struct {
	a   *Archive
	pos int64
	err error
}

func (a *Archive) at(pos int64) *cursor {
	return &cursor{a: a, pos: pos}
}

func (c *cursor) readN(n int) []byte {
	if c.err != nil {
		return nil
	}
	buf := make([]byte, n)
	if n == 0 {
		return buf
	}
	read, err := c.a.stream.ReadAt(buf, c.pos)
	if err != nil && err != io.EOF {
		c.err = err
		return nil
	}
	if read < n {
		c.err = io.ErrUnexpectedEOF
		return nil
	}
	c.pos += int64(n)
	return buf
}

func (c *cursor) readU2() uint16 {
	b := c.readN(2)
	if c.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (c *cursor) readU4() uint32 {
	b := c.readN(4)
	if c.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (c *cursor) skip(n int) {
	if c.err != nil {
		return
	}
	c.pos += int64(n)
}

// Load locates the central directory and indexes every entry by name.
func (a *Archive) Load() error {
	pos, err := a.seekCentralDirEnd()
	if err != nil {
		return err
	}
	centralDirPos, err := a.readCentralDirEnd(pos)
	if err != nil {
		return err
	}
	a.centralDirPos = centralDirPos
	return a.readEntries()
}

// seekCentralDirEnd scans backward from the end of the stream, reading
// up to 22+0xFFFF bytes, for the 0x06054b50 signature (spec.md §4.3
// step 1), mirroring zip_archive::impl::seek_central_dir byte-for-byte.
func (a *Archive) seekCentralDirEnd() (int64, error) {
	bufSize := int64(centralDirEndSize + maxCommentSize)
	if bufSize > a.streamSize {
		bufSize = a.streamSize
	}

	magic := [4]byte{0x50, 0x4b, 0x05, 0x06} // little-endian bytes of 0x06054b50

	readEnd := a.streamSize
	for readEnd > 0 {
		size := bufSize
		if readEnd < size {
			size = readEnd
		}
		readPos := readEnd - size
		buf := make([]byte, size)
		if _, err := a.stream.ReadAt(buf, readPos); err != nil && err != io.EOF {
			return 0, newArchiveError("failed to read while searching for central directory: %v", err)
		}

		for i := len(buf) - 4; i >= 0; i-- {
			if buf[i] == magic[0] && buf[i+1] == magic[1] && buf[i+2] == magic[2] && buf[i+3] == magic[3] {
				return readPos + int64(i), nil
			}
		}

		readEnd -= size
	}

	return 0, newArchiveError("end of central directory signature not found")
}

func (a *Archive) readCentralDirEnd(pos int64) (int64, error) {
	c := a.at(pos)
	magic := c.readU4()
	if magic != sigCentralDirEnd {
		return 0, newArchiveError("expected central directory end signature at offset %d, got 0x%x", pos, magic)
	}
	c.readU2() // this disk id
	c.readU2() // central dir disk id
	c.readU2() // local record count
	c.readU2() // total record count
	c.readU4() // central directory size
	centralDirPos := c.readU4()
	c.readU2() // comment length
	if c.err != nil {
		return 0, newArchiveError("failed to read central directory end record: %v", c.err)
	}
	return int64(centralDirPos), nil
}

func (a *Archive) readEntries() error {
	a.entries = a.entries[:0]
	pos := a.centralDirPos
	for {
		c := a.at(pos)
		magic := c.readU4()
		if c.err != nil {
			return newArchiveError("failed to read central directory entry at offset %d: %v", pos, c.err)
		}
		if magic != sigCentralDirEntry {
			break
		}

		var e Entry
		e.VersionMadeBy = c.readU2()
		e.VersionNeeded = c.readU2()
		e.Flags = c.readU2()
		e.CompressMethod = CompressMethod(c.readU2())
		e.LastModifiedTime = c.readU2()
		e.LastModifiedDate = c.readU2()
		e.CRC32 = c.readU4()
		e.CompressedSize = c.readU4()
		e.UncompressedSize = c.readU4()
		filenameLen := c.readU2()
		extraLen := c.readU2()
		commentLen := c.readU2()
		e.DiskID = c.readU2()
		e.AttributesInternal = c.readU2()
		e.AttributesExternal = c.readU4()
		e.LocalHeaderOffset = c.readU4()

		if filenameLen > 0 {
			e.Filename = string(c.readN(int(filenameLen)))
		}
		c.skip(int(extraLen))
		c.skip(int(commentLen))

		if c.err != nil {
			return newArchiveError("failed to read central directory entry %q: %v", e.Filename, c.err)
		}

		a.entries = append(a.entries, e)
		a.byName[e.Filename] = len(a.entries) - 1
		pos = c.pos
	}
	return nil
}

// EntryCount returns the number of indexed entries.
func (a *Archive) EntryCount() int { return len(a.entries) }

// EntryName returns the filename of the entry at pos, or "" if out of range.
func (a *Archive) EntryName(pos int) string {
	if pos < 0 || pos >= len(a.entries) {
		return ""
	}
	return a.entries[pos].Filename
}

// EntryHeader returns the central-directory record for name.
func (a *Archive) EntryHeader(name string) (Entry, error) {
	idx, ok := a.byName[name]
	if !ok {
		return Entry{}, newArchiveError("file entry named %q not found", name)
	}
	return a.entries[idx], nil
}

// ReadFileEntry seeks to the local header at the recorded offset, skips
// past the filename and extra field (using lengths from the *local*
// header, which may differ from the central directory's, per spec.md
// §4.3), reads CompressedSize bytes, and inflates them if needed.
func (a *Archive) ReadFileEntry(name string) ([]byte, error) {
	idx, ok := a.byName[name]
	if !ok {
		return nil, newArchiveError("entry named %q not found", name)
	}
	e := a.entries[idx]

	c := a.at(int64(e.LocalHeaderOffset))
	c.skip(4) // local header signature
	c.skip(2) // version needed
	c.skip(2) // flags
	c.skip(2) // compression method
	c.skip(2) // last mod time
	c.skip(2) // last mod date
	c.skip(4) // crc32
	c.skip(4) // compressed size
	c.skip(4) // uncompressed size
	filenameLen := c.readU2()
	extraLen := c.readU2()
	c.skip(int(filenameLen))
	c.skip(int(extraLen))
	if c.err != nil {
		return nil, newArchiveError("failed to read local header for %q: %v", name, c.err)
	}

	raw := c.readN(int(e.CompressedSize))
	if c.err != nil {
		return nil, newArchiveError("failed to read compressed data for %q: %v", name, c.err)
	}

	switch e.CompressMethod {
	case Stored:
		return raw, nil
	case Deflated:
		r := flate.NewReader(newByteReader(raw))
		defer r.Close()
		out := make([]byte, 0, e.UncompressedSize)
		buf := make([]byte, 32*1024)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				out = append(out, buf[:n]...)
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, newArchiveError("deflate failed for %q: %v", name, err)
			}
		}
		if uint32(len(out)) != e.UncompressedSize {
			return nil, newArchiveError("deflate produced %d bytes, expected %d for %q", len(out), e.UncompressedSize, name)
		}
		return out, nil
	default:
		return nil, newArchiveError("unsupported compression method %d for %q", e.CompressMethod, name)
	}
}

func newByteReader(b []byte) io.Reader {
	return &byteReader{b: b}
}

type byteReader struct {
	b   []byte
	pos int
}

func (r *byteReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.b) {
		return 0, io.EOF
	}
	n := copy(p, r.b[r.pos:])
	r.pos += n
	return n, nil
}
