package ioutil

import (
	"io"

	md5 "github.com/gyy0727/md5mini"
)

func NewLimitedBufferReader(r io.Reader, n int) io.Reader {
	return &limitedBufferReader{
		r: r,
		n: n,
	}
}

// *通过存储底层读取器和限制大小,控制每次读取的行为
type limitedBufferReader struct {
	r io.Reader
	n int
}

// *无论传入的缓冲区大小如何,只会读取n个指定大小的字节
func (r *limitedBufferReader) Read(p []byte) (n int, err error) {
	np := p
	if len(np) > r.n {
		np = np[:r.n]
	}
	return r.r.Read(np)
}

// *NewDigestReader 在读取器上挂一个散列器,
// *每读走一个字节就同步喂给散列器,读完即可直接 Finalize 拿摘要
func NewDigestReader(r io.Reader, h *md5.Hasher) io.Reader {
	return &digestReader{r: r, h: h}
}

type digestReader struct {
	r io.Reader
	h *md5.Hasher
}

func (d *digestReader) Read(p []byte) (n int, err error) {
	n, err = d.r.Read(p)
	if n > 0 {
		d.h.Update(p[:n])
	}
	return n, err
}
