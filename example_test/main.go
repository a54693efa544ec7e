package main

import (
	"fmt"
	"os"

	"github.com/linxlib/conftree"
)

func main() {
	if err := os.WriteFile("sample.json", []byte("{}\n"), 0o644); err != nil {
		fmt.Println(err)
		return
	}

	conf, err := conftree.New(conftree.Descriptor{
		Type: "File",
		Settings: map[string]any{
			"source": "sample.json",
		},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	for key, value := range map[string]string{
		"employee.001.id":       "001",
		"employee.001.name":     "Bob",
		"employee.001.age":      "27",
		"employee.001.position": "Developer",
		"employee.002.id":       "002",
		"employee.002.name":     "Sarah",
		"employee.002.age":      "24",
		"employee.002.position": "Project Manager",
	} {
		if _, err := conf.Set(key, value); err != nil {
			fmt.Println(err)
			return
		}
	}

	fmt.Printf("%v\n", conf.Get("").Raw())
	fmt.Printf("%v\n", conf.Get("employee.002").Raw())

	// keep the in-memory data, adopt an in-process store as the new write
	// target
	err = conf.SwitchProvider(conftree.Descriptor{
		Type: "Memory",
		Settings: map[string]any{
			"seed": map[string]any{},
		},
	}, false)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%v\n", conf.Get("employee.001.name").Raw())
}
