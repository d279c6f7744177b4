package main

import (
	"flag"
	"fmt"
	"os"

	md5 "github.com/gyy0727/md5mini"
	"github.com/gyy0727/md5mini/pkg/fileutil"
)

func main() {
	text := flag.String("text", "", "hash the given string instead of files")
	b64 := flag.Bool("base64", false, "print base64 digests instead of hex")
	flag.Parse()

	encode := func(wa *md5.WordArray) string {
		if *b64 {
			return wa.Base64()
		}
		return wa.Hex()
	}

	if *text != "" || flag.NArg() == 0 {
		//*没有文件参数时按字符串模式处理,空串也是合法输入
		fmt.Println(encode(md5.New().FinalizeString(*text)))
		return
	}

	exit := 0
	for _, path := range flag.Args() {
		sum, err := fileutil.ChecksumFile(path)
		if err != nil {
			exit = 1
			continue
		}
		fmt.Printf("%s  %s\n", encode(sum), path)
	}
	os.Exit(exit)
}
