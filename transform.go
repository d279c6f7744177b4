package md5mini

// *BlockTransform 是块缓冲引擎调度的压缩变换接口
// *缓冲引擎只负责"攒够了多少字节"这件通用的事,
// *"一个块意味着什么"由具体算法实现,MD5 是其中一个实现者,
// *换一个 BlockSizeWords 和 MinBufferedBlocks 就能承载别的分块散列算法
type BlockTransform interface {
	//*每个块包含的32位字数,MD5 为16(64字节)
	BlockSizeWords() int

	//*即使不要求 flush 也要滞留不处理的块数
	//*用于需要向前看的算法,MD5 的压缩函数没有块间依赖,返回0
	MinBufferedBlocks() int

	//*消费 words 中 [offset, offset+BlockSizeWords) 的一个完整块,原地更新内部状态
	//*offset 必须对齐到块边界,且剩余字数必须足够一个块,违反时直接panic
	ProcessBlock(words []uint32, offset int)
}
