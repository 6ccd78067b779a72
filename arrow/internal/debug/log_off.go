// +build !debug

package debug

func Log(msg interface{}) {}
