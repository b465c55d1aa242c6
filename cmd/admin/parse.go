package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/parser"
	"github.com/coinbase/treenode/internal/worker"
)

var (
	parseFlags struct {
		feed string
		txID string
	}

	parseCommand = NewCommand("parse", func() error {
		feed, err := worker.NewFileFeed(parseFlags.feed)
		if err != nil {
			return xerrors.Errorf("failed to open feed: %w", err)
		}
		defer feed.Close()

		for {
			transaction, err := feed.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return xerrors.Errorf("failed to read feed: %w", err)
			}

			if parseFlags.txID != "" && transaction.TxID != parseFlags.txID {
				continue
			}

			fmt.Printf("%v (slot=%v)\n", color.MagentaString(transaction.TxID), transaction.Slot)
			nodes, err := parser.Parse(transaction.Logs)
			if err != nil {
				fmt.Printf("  %v\n", color.RedString("%+v", err))
				continue
			}

			for _, node := range nodes {
				printNode(node)
			}
		}

		return nil
	})
)

func printNode(node *parser.Node) {
	indent := strings.Repeat("  ", node.Depth+1)
	header := color.CyanString(node.ProgramID)
	if name, ok := node.InstructionName(); ok {
		header = fmt.Sprintf("%v %v", header, color.GreenString(name))
	}
	fmt.Printf("%v%v\n", indent, header)

	for _, child := range node.Children {
		if child.Node != nil {
			printNode(child.Node)
			continue
		}

		if child.Token.Kind == parser.TokenData {
			fmt.Printf("%v  data (%v bytes base64)\n", indent, len(child.Token.Payload))
		}
	}
}

func init() {
	rootCommand.AddCommand(parseCommand)
	parseCommand.StringVar(&parseFlags.feed, "feed", "", true)
	parseCommand.StringVar(&parseFlags.txID, "tx-id", "", false)
}
