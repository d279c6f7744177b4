package md5mini

// *BlockBuffer 是通用的块缓冲引擎
// *接收任意长度的追加数据,攒成固定大小的块,按需把整块交给 BlockTransform 消费
// *data 存放已追加但还没被变换消费的字节
// *totalBytes 记录历史上追加过的每一个字节,只用于最终的长度编码,中途永不回退
type BlockBuffer struct {
	data       *WordArray
	totalBytes uint64
}

// *新建一个空的块缓冲
func NewBlockBuffer() *BlockBuffer {
	return &BlockBuffer{data: NewWordArray(nil, 0)}
}

// *清空缓冲,回到刚构造的状态
func (b *BlockBuffer) Reset() {
	b.data = NewWordArray(nil, 0)
	b.totalBytes = 0
}

// *当前还没被消费的数据,finalize 需要原地改写它来做填充
func (b *BlockBuffer) Data() *WordArray {
	return b.data
}

// *历史追加的总字节数
func (b *BlockBuffer) TotalBytes() uint64 {
	return b.totalBytes
}

// *把一段字序列拼接到缓冲末尾,同时推进总字节计数
// *对追加的数据量没有上限,也没有错误分支
func (b *BlockBuffer) Append(wa *WordArray) {
	b.data.Concat(wa)
	b.totalBytes += uint64(wa.SigBytes)
	bytesAppended.Add(float64(wa.SigBytes))
}

// *追加原始字节
func (b *BlockBuffer) AppendBytes(p []byte) {
	b.Append(BytesToWords(p))
}

// *追加字符串,走 UTF-8 编码再逐字节打包的文本路径
func (b *BlockBuffer) AppendString(s string) {
	b.Append(StringToWords(s))
}

// *把当前攒够的整块依次交给变换 t 消费,然后从缓冲头部移除已消费的字
// *flush 为 false 时只处理完整的块,再扣掉 t 要求滞留的块数,向下取整到0
// *flush 为 true 时连最后一个不满的块一起算进去,
// *因为 finalize 在调用前已经把尾部填充到了块边界
// *返回值包装了刚被消费的字和字节数,update 路径会丢弃它
func (b *BlockBuffer) Process(flush bool, t BlockTransform) *WordArray {
	blockWords := t.BlockSizeWords()
	blockBytes := blockWords * 4

	var nBlocks int
	if flush {
		nBlocks = (b.data.SigBytes + blockBytes - 1) / blockBytes
	} else {
		nBlocks = b.data.SigBytes/blockBytes - t.MinBufferedBlocks()
		if nBlocks < 0 {
			nBlocks = 0
		}
	}

	nWords := nBlocks * blockWords
	nBytes := nWords * 4
	if nBytes > b.data.SigBytes {
		nBytes = b.data.SigBytes
	}

	if nWords == 0 {
		return NewWordArray(nil, 0)
	}

	for offset := 0; offset < nWords; offset += blockWords {
		t.ProcessBlock(b.data.Words, offset)
	}
	blocksProcessed.Add(float64(nBlocks))

	removed := b.data.Splice(nWords)
	b.data.SigBytes -= nBytes
	return NewWordArray(removed, nBytes)
}
