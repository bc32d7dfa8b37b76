/*
Package avldbg implements helpers to debug persistent AVL trees.

Print renders a single tree as indented text. ToGraphViz renders any number of
incarnations of a tree as one GraphViz diagram; nodes shared between incarnations
show up once, making structural sharing visible.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package avldbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"testing"
	"text/template"

	"github.com/npillmayer/avltree/persistent/avl"
	tp "github.com/xlab/treeprint"
)

// Print returns a multi-line text representation of a tree. Every node is printed
// with its element, height and balance factor.
func Print[T any](tree avl.Tree[T]) string {
	header := fmt.Sprintf("\nTree(height=%d, size=%d)\n", tree.Height(), tree.Size())
	p := tp.New()
	ppt(p, tree.Root())
	return header + p.String() + "\n"
}

func ppt[T any](p tp.Tree, node *avl.Node[T]) {
	if node.IsEmpty() {
		return
	}
	if node.Left().IsEmpty() && node.Right().IsEmpty() {
		p.AddNode(nodeLabel(node))
		return
	}
	branch := p.AddBranch(nodeLabel(node))
	for _, ch := range []*avl.Node[T]{node.Left(), node.Right()} {
		if ch.IsEmpty() {
			branch.AddNode("*")
			continue
		}
		ppt(branch, ch)
	}
}

func nodeLabel[T any](node *avl.Node[T]) string {
	return fmt.Sprintf("%v  h=%d bf=%+d", node.Value(), node.Height(), node.BalanceFactor())
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname    string
	VersionTmpl *template.Template
	NodeTmpl    *template.Template
	EdgeTmpl    *template.Template
}

// ToGraphViz outputs a diagram for a list of trees. The diagram is in GraphViz (DOT)
// format. Trees usually are different incarnations of a single tree, e.g. a tree and
// copies of it after insertions or deletions. Every tree gets a version label
// pointing to its root; nodes referenced by more than one tree are drawn once.
func ToGraphViz[T any](w io.Writer, trees ...avl.Tree[T]) error {
	tmpl, err := template.New("avl").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.VersionTmpl = template.Must(template.New("version").Parse(versionTmpl))
	gparams.NodeTmpl = template.Must(template.New("avlnode").Parse(avlNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("avledge").Parse(avlEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*avl.Node[T]]string, 64)
	for i, tree := range trees {
		if err = nodes(tree.Root(), w, dict, &gparams); err != nil {
			return err
		}
		v := version{Name: fmt.Sprintf("version%d", i), Label: fmt.Sprintf("v%d", i), Root: dict[tree.Root()]}
		if err = gparams.VersionTmpl.Execute(w, v); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a list of trees and a testing.T, it will
// create a GraphViz image of the trees and write it to a file in the current folder,
// choosing a unique file name. The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty[T any](t *testing.T, trees ...avl.Tree[T]) {
	tmpfile, err := os.CreateTemp(".", "avl.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing AVL digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(tmpfile, trees...); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing AVL tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	Name   string
	Label  string
	Height int
	BF     int
}

type edge struct {
	From, To string
	Dir      string
}

type version struct {
	Name, Label, Root string
}

// nodes writes the subtree at n, skipping nodes already contained in dict.
func nodes[T any](n *avl.Node[T], w io.Writer, dict map[*avl.Node[T]]string, gparams *graphParamsType) error {
	if n.IsEmpty() {
		return nil
	}
	if _, seen := dict[n]; seen {
		return nil
	}
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[n] = name
	err := gparams.NodeTmpl.Execute(w, node{
		Name:   name,
		Label:  fmt.Sprintf("%v", n.Value()),
		Height: n.Height(),
		BF:     n.BalanceFactor(),
	})
	if err != nil {
		return err
	}
	for _, ch := range []struct {
		dir  string
		node *avl.Node[T]
	}{{"L", n.Left()}, {"R", n.Right()}} {
		if ch.node.IsEmpty() {
			continue
		}
		if err = nodes(ch.node, w, dict, gparams); err != nil {
			return err
		}
		if err = gparams.EdgeTmpl.Execute(w, edge{From: name, To: dict[ch.node], Dir: ch.dir}); err != nil {
			return err
		}
	}
	return nil
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "TB"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const versionTmpl = `{{ .Name }}	[ label={{ printf "%q" .Label }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ if .Root }}{{ .Name }} -> {{ .Root }} [style="dashed" weight=1] ;
{{ end }}`

const avlNodeTmpl = `{{ .Name }}	[ label=<{{ html .Label }}<br/><font point-size="9">h={{ .Height }} bf={{ .BF }}</font>> shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const avlEdgeTmpl = `{{ .From }} -> {{ .To }} [label="{{ .Dir }}" weight=1] ;
`
