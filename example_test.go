package fdbs58_test

import (
	"errors"
	"fmt"

	fdbs58 "github.com/Lou-Kamades/fd-bs58"
)

func ExampleEncode32() {
	key := [32]byte{
		7, 224, 70, 147, 60, 112, 144, 250, 46, 62, 133, 57, 252, 149, 220, 143,
		237, 77, 21, 208, 191, 61, 58, 206, 152, 136, 129, 103, 129, 48, 141, 139,
	}
	fmt.Println(fdbs58.Encode32(key))
	// Output: XkCriyrNwS3G4rzAXtG5B1nnvb5Ka1JtCku93VqeKAr
}

func ExampleDecode32() {
	key, err := fdbs58.Decode32("XkCriyrNwS3G4rzAXtG5B1nnvb5Ka1JtCku93VqeKAr")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%x\n", key)
	// Output: 07e046933c7090fa2e3e8539fc95dc8fed4d15d0bf3d3ace9888816781308d8b
}

func ExampleEncode64() {
	var sig [64]byte
	fmt.Println(fdbs58.Encode64(sig))
	// Output: 1111111111111111111111111111111111111111111111111111111111111111
}

func ExampleDecode64_errors() {
	_, err := fdbs58.Decode64("this is not base58: 0 O I l")
	fmt.Println(errors.Is(err, fdbs58.ErrInvalidCharacter))
	// Output: true
}
