package fileutil

import (
	"io"
	"os"

	md5 "github.com/gyy0727/md5mini"
	"github.com/gyy0727/md5mini/pkg/ioutil"
	"go.uber.org/zap"
)

const (
	//*文件权限设置为 0600,表示只有文件拥有者有读写权限
	PrivateFileMode = 0600
	//*每次喂给散列器的页大小
	pageSize = 64 * 1024
)

var (
	logger, _ = zap.NewDevelopment()
)

// *检查文件是否存在
func Exist(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

// *把读取器里的全部数据分页喂给散列器,返回摘要
func ChecksumReader(r io.Reader) (*md5.WordArray, error) {
	h := md5.New()
	//*单次读取收口到页大小,底层读取器一次吐再多也按页进散列器
	pr := ioutil.NewLimitedBufferReader(r, pageSize)
	page := make([]byte, pageSize)
	for {
		n, err := pr.Read(page)
		if n > 0 {
			h.Update(page[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return h.Finalize(nil), nil
}

// *计算单个文件的摘要
func ChecksumFile(path string) (*md5.WordArray, error) {
	f, err := os.Open(path)
	if err != nil {
		logger.Error("打开文件失败:", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	defer f.Close()

	sum, err := ChecksumReader(f)
	if err != nil {
		logger.Error("读取文件失败:", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	return sum, nil
}
