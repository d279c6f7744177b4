package md5mini

import "hash"

// *digest 结构体把 Hasher 适配成标准库的 hash.Hash 接口
// *这样 io.Copy 之类按 hash.Hash 消费的地方可以直接用
type digest struct {
	h *Hasher
}

// *新建一个实现 hash.Hash 接口的增量 MD5 实例
func NewHash() hash.Hash {
	return &digest{h: New()}
}

// *实现 hash.Hash 接口的 Size 方法(返回摘要字节长度)
func (d *digest) Size() int { return Size }

// *实现 hash.Hash 接口的 BlockSize 方法(返回数据块大小)
func (d *digest) BlockSize() int { return BlockSize }

// *Reset 方法把散列状态重置回初始值
func (d *digest) Reset() { d.h.Reset() }

// *Write 方法追加数据(实现 io.Writer 接口),永不返回错误
func (d *digest) Write(p []byte) (n int, err error) {
	d.h.Update(p)
	return len(p), nil
}

// *Sum 把当前摘要追加到 in 后返回
// *收尾在状态的拷贝上进行,调用方之后还可以继续 Write
func (d *digest) Sum(in []byte) []byte {
	out := d.h.Clone().Finalize(nil)
	return append(in, out.Bytes()...)
}
