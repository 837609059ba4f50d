// Command focushours tracks yearly goal planets, their wishes and the focus
// hours spent on them.
package main

import "github.com/visionfocus/focushours/cmd/focushours/root"

func main() {
	root.Execute()
}
