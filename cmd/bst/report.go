package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/e11jah/bst"
)

func demo[T any](w io.Writer, tree bst.Tree[T], values, search, del []T, shape bool) error {
	for _, v := range values {
		tree.Insert(v)
	}

	if err := section(w, fmt.Sprintf("Inserted %s", joinValues(values))); err != nil {
		return err
	}
	if err := info(w, tree, shape); err != nil {
		return err
	}

	if len(search) > 0 {
		items := make([]pterm.BulletListItem, 0, len(search))
		for _, v := range search {
			items = append(items, pterm.BulletListItem{Level: 0, Text: fmt.Sprintf("Contains %v: %t", v, tree.Search(v))})
		}
		if err := list(w, "Searching for values", items); err != nil {
			return err
		}
	}

	if len(del) > 0 {
		items := make([]pterm.BulletListItem, 0, len(del))
		for _, v := range del {
			removed := tree.Delete(v)
			items = append(items, pterm.BulletListItem{
				Level: 0,
				Text:  fmt.Sprintf("Deleted %v: %t, contains %v after deletion: %t", v, removed, v, tree.Search(v)),
			})
		}
		if err := list(w, "Deleting values", items); err != nil {
			return err
		}
		return info(w, tree, shape)
	}
	return nil
}

func info[T any](w io.Writer, tree bst.Tree[T], shape bool) error {
	items := []pterm.BulletListItem{
		{Level: 0, Text: fmt.Sprintf("Is empty: %t", tree.IsEmpty())},
		{Level: 0, Text: fmt.Sprintf("Size: %d", tree.Size())},
	}
	if min, ok := tree.Min(); ok {
		items = append(items, pterm.BulletListItem{Level: 0, Text: fmt.Sprintf("Minimum value: %v", min)})
	}
	if max, ok := tree.Max(); ok {
		items = append(items, pterm.BulletListItem{Level: 0, Text: fmt.Sprintf("Maximum value: %v", max)})
	}
	items = append(items,
		pterm.BulletListItem{Level: 0, Text: fmt.Sprintf("Tree height: %d", tree.Height())},
		pterm.BulletListItem{Level: 0, Text: "Traversals:"},
		pterm.BulletListItem{Level: 1, Text: "Inorder: " + joinValues(tree.InOrder())},
		pterm.BulletListItem{Level: 1, Text: "Preorder: " + joinValues(tree.PreOrder())},
		pterm.BulletListItem{Level: 1, Text: "Postorder: " + joinValues(tree.PostOrder())},
	)
	if err := list(w, "Tree information", items); err != nil {
		return err
	}

	if !shape || tree.IsEmpty() {
		return nil
	}
	s, err := pterm.DefaultTree.WithRoot(pterm.TreeNode{
		Children: []pterm.TreeNode{shapeOf(tree.Root(), "")},
	}).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// shapeOf mirrors the tree below n, tagging children with their side.
func shapeOf[T any](n bst.Node[T], side string) pterm.TreeNode {
	tn := pterm.TreeNode{Text: side + fmt.Sprint(n.Value())}
	if l := n.Left(); l != nil {
		tn.Children = append(tn.Children, shapeOf(l, "L: "))
	}
	if r := n.Right(); r != nil {
		tn.Children = append(tn.Children, shapeOf(r, "R: "))
	}
	return tn
}

func section(w io.Writer, title string) error {
	_, err := fmt.Fprint(w, pterm.DefaultSection.Sprint(title))
	return err
}

func list(w io.Writer, title string, items []pterm.BulletListItem) error {
	s, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n%s", pterm.Bold.Sprint(title), s)
	return err
}

func joinValues[T any](values []T) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
