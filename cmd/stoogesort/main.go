// Copyright 2026 stoogesort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command stoogesort is a filter that stooge-sorts a newline-separated list
// of integers from stdin:
//
//	seq 10 | shuf | stoogesort
//
// When stdin is a terminal it prints a usage hint instead of blocking on
// input that will never come.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/multiplealiases/stoogesort/stooge"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stoogesort",
		Short: "Sort newline-separated integers from stdin using stooge sort",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f, ok := cmd.InOrStdin().(*os.File); ok {
				if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
					fmt.Fprintln(cmd.OutOrStdout(), "Pipe in a newline-separated list of ints")
					return nil
				}
			}
			return sortLines(cmd.InOrStdin(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
}

// sortLines reads one base-10 int64 per line from in, stooge-sorts them,
// and writes them back out one per line.
func sortLines(in io.Reader, out io.Writer) error {
	var nums []int64
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		n, err := strconv.ParseInt(scanner.Text(), 10, 64)
		if err != nil {
			return fmt.Errorf("parsing line %d: %w", len(nums)+1, err)
		}
		nums = append(nums, n)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	stooge.Sort(nums)

	w := bufio.NewWriter(out)
	for _, n := range nums {
		fmt.Fprintln(w, n)
	}
	return w.Flush()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
