package md5mini

import (
	"math/bits"
)

// *MD5 摘要的字节长度
const Size = 16

// *MD5 块的字节长度
const BlockSize = 64

// *压缩函数用的64个轮常量,定义为 floor(|sin(i+1)| * 2^32) 截断到32位
// *这里直接内嵌预先验证过的十六进制字面值,
// *不在运行时用浮点重算,避免平台间浮点舍入差异污染摘要
var roundConstants = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// *MD5 压缩变换,持有128位的运行散列状态(A,B,C,D 四个字)
// *状态只会在整块压缩和 finalize 里被改写,从不部分更新
type MD5 struct {
	hash [4]uint32
}

// *新建一个已初始化的 MD5 变换
func NewMD5() *MD5 {
	m := &MD5{}
	m.Reset()
	return m
}

// *把散列状态重置为四个魔数初值
func (m *MD5) Reset() {
	m.hash = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}
}

func (m *MD5) BlockSizeWords() int { return 16 }

// *MD5 的压缩函数没有块间依赖,不需要滞留任何块
func (m *MD5) MinBufferedBlocks() int { return 0 }

// *四个非线性混合函数对应的单轮计算
// *每轮算 rotl(a + mix(b,c,d) + x + t, s) + b,所有加法按2^32取模回绕
func ff(a, b, c, d, x uint32, s int, t uint32) uint32 {
	n := a + ((b & c) | (^b & d)) + x + t
	return bits.RotateLeft32(n, s) + b
}

func gg(a, b, c, d, x uint32, s int, t uint32) uint32 {
	n := a + ((b & d) | (c &^ d)) + x + t
	return bits.RotateLeft32(n, s) + b
}

func hh(a, b, c, d, x uint32, s int, t uint32) uint32 {
	n := a + (b ^ c ^ d) + x + t
	return bits.RotateLeft32(n, s) + b
}

func ii(a, b, c, d, x uint32, s int, t uint32) uint32 {
	n := a + (c ^ (b | ^d)) + x + t
	return bits.RotateLeft32(n, s) + b
}

// *压缩一个64字节块,原地更新散列状态
// *缓冲内部的字是大端存放的,而 MD5 的位运算按小端定义,
// *所以先把块内16个字原地翻转字节序再参与运算
func (m *MD5) ProcessBlock(words []uint32, offset int) {
	if offset%16 != 0 || offset+16 > len(words) {
		panic("md5mini: processBlock requires a full 16-word block at an aligned offset")
	}

	w := words[offset : offset+16]
	for i := range w {
		w[i] = bits.ReverseBytes32(w[i])
	}

	a, b, c, d := m.hash[0], m.hash[1], m.hash[2], m.hash[3]
	t := &roundConstants

	//*第一轮 F(x,y,z) = (x AND y) OR (NOT x AND z),消息下标 0..15,移位 7,12,17,22
	a = ff(a, b, c, d, w[0], 7, t[0])
	d = ff(d, a, b, c, w[1], 12, t[1])
	c = ff(c, d, a, b, w[2], 17, t[2])
	b = ff(b, c, d, a, w[3], 22, t[3])
	a = ff(a, b, c, d, w[4], 7, t[4])
	d = ff(d, a, b, c, w[5], 12, t[5])
	c = ff(c, d, a, b, w[6], 17, t[6])
	b = ff(b, c, d, a, w[7], 22, t[7])
	a = ff(a, b, c, d, w[8], 7, t[8])
	d = ff(d, a, b, c, w[9], 12, t[9])
	c = ff(c, d, a, b, w[10], 17, t[10])
	b = ff(b, c, d, a, w[11], 22, t[11])
	a = ff(a, b, c, d, w[12], 7, t[12])
	d = ff(d, a, b, c, w[13], 12, t[13])
	c = ff(c, d, a, b, w[14], 17, t[14])
	b = ff(b, c, d, a, w[15], 22, t[15])

	//*第二轮 G(x,y,z) = (x AND z) OR (y AND NOT z),下标按 (5i+1) mod 16 走,移位 5,9,14,20
	a = gg(a, b, c, d, w[1], 5, t[16])
	d = gg(d, a, b, c, w[6], 9, t[17])
	c = gg(c, d, a, b, w[11], 14, t[18])
	b = gg(b, c, d, a, w[0], 20, t[19])
	a = gg(a, b, c, d, w[5], 5, t[20])
	d = gg(d, a, b, c, w[10], 9, t[21])
	c = gg(c, d, a, b, w[15], 14, t[22])
	b = gg(b, c, d, a, w[4], 20, t[23])
	a = gg(a, b, c, d, w[9], 5, t[24])
	d = gg(d, a, b, c, w[14], 9, t[25])
	c = gg(c, d, a, b, w[3], 14, t[26])
	b = gg(b, c, d, a, w[8], 20, t[27])
	a = gg(a, b, c, d, w[13], 5, t[28])
	d = gg(d, a, b, c, w[2], 9, t[29])
	c = gg(c, d, a, b, w[7], 14, t[30])
	b = gg(b, c, d, a, w[12], 20, t[31])

	//*第三轮 H(x,y,z) = x XOR y XOR z,下标按 (3i+5) mod 16 走,移位 4,11,16,23
	a = hh(a, b, c, d, w[5], 4, t[32])
	d = hh(d, a, b, c, w[8], 11, t[33])
	c = hh(c, d, a, b, w[11], 16, t[34])
	b = hh(b, c, d, a, w[14], 23, t[35])
	a = hh(a, b, c, d, w[1], 4, t[36])
	d = hh(d, a, b, c, w[4], 11, t[37])
	c = hh(c, d, a, b, w[7], 16, t[38])
	b = hh(b, c, d, a, w[10], 23, t[39])
	a = hh(a, b, c, d, w[13], 4, t[40])
	d = hh(d, a, b, c, w[0], 11, t[41])
	c = hh(c, d, a, b, w[3], 16, t[42])
	b = hh(b, c, d, a, w[6], 23, t[43])
	a = hh(a, b, c, d, w[9], 4, t[44])
	d = hh(d, a, b, c, w[12], 11, t[45])
	c = hh(c, d, a, b, w[15], 16, t[46])
	b = hh(b, c, d, a, w[2], 23, t[47])

	//*第四轮 I(x,y,z) = y XOR (x OR NOT z),下标按 7i mod 16 走,移位 6,10,15,21
	a = ii(a, b, c, d, w[0], 6, t[48])
	d = ii(d, a, b, c, w[7], 10, t[49])
	c = ii(c, d, a, b, w[14], 15, t[50])
	b = ii(b, c, d, a, w[5], 21, t[51])
	a = ii(a, b, c, d, w[12], 6, t[52])
	d = ii(d, a, b, c, w[3], 10, t[53])
	c = ii(c, d, a, b, w[10], 15, t[54])
	b = ii(b, c, d, a, w[1], 21, t[55])
	a = ii(a, b, c, d, w[8], 6, t[56])
	d = ii(d, a, b, c, w[15], 10, t[57])
	c = ii(c, d, a, b, w[6], 15, t[58])
	b = ii(b, c, d, a, w[13], 21, t[59])
	a = ii(a, b, c, d, w[4], 6, t[60])
	d = ii(d, a, b, c, w[11], 10, t[61])
	c = ii(c, d, a, b, w[2], 15, t[62])
	b = ii(b, c, d, a, w[9], 21, t[63])

	//*把本块的结果按2^32取模累加回运行状态
	m.hash[0] += a
	m.hash[1] += b
	m.hash[2] += c
	m.hash[3] += d
}

// *一次性的收尾序列:填充,长度编码,清空缓冲,输出摘要
// *这是破坏性操作,执行后缓冲已被抽干,
// *不经 Reset 再次调用得到的是无意义的结果,由上层的 Hasher 负责拦截
func (m *MD5) Finalize(b *BlockBuffer) *WordArray {
	data := b.Data()
	nBitsTotal := b.TotalBytes() * 8
	nBitsLeft := uint64(data.SigBytes) * 8

	//*在现有数据之后补上单个填充位(0x80 对齐到字节)
	padWord := int(nBitsLeft >> 5)
	for len(data.Words) <= padWord {
		data.Words = append(data.Words, 0)
	}
	data.Words[padWord] |= 0x80 << (24 - nBitsLeft%32)

	//*把64位总比特长度写进填充后块的最后两个字槽
	//*压缩时整块会再做一次字节序翻转,所以这里按32位一半一半预先翻转,
	//*低32位占倒数第二个字,高32位占最后一个字,正好构成小端的长度后缀
	lenIdx := int((nBitsLeft+64)>>9<<4) + 14
	for len(data.Words) < lenIdx+2 {
		data.Words = append(data.Words, 0)
	}
	data.Words[lenIdx] = bits.ReverseBytes32(uint32(nBitsTotal))
	data.Words[lenIdx+1] = bits.ReverseBytes32(uint32(nBitsTotal >> 32))

	//*让填充出来的所有字对处理可见
	data.SigBytes = len(data.Words) * 4

	//*强制最后一次处理,把填充尾块也压进散列状态
	b.Process(true, m)
	digestsFinalized.Inc()

	//*翻转四个状态字的字节序,得到16字节摘要
	out := make([]uint32, 4)
	for i, h := range m.hash {
		out[i] = bits.ReverseBytes32(h)
	}
	return NewWordArray(out, Size)
}
