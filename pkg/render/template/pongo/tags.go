package pongo

import (
	"bytes"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formhelpers/pkg/helpers"
	"github.com/goliatone/go-formhelpers/pkg/markup"
)

var registerTagsOnce sync.Once

// registerTags installs the formhelper and formblock tags. pongo2 keeps tags
// in a process-wide registry, so this runs once per process.
//
//	{% formhelper "app-input" "email" user.email class="wide" %}
//	{% formblock "form" "/signup" class="form" %}...{% endformblock %}
func registerTags() {
	registerTagsOnce.Do(func() {
		_ = pongo2.RegisterTag("formhelper", parseInlineTag)
		_ = pongo2.RegisterTag("formblock", parseBlockTag)
	})
}

type kwarg struct {
	key  string
	expr pongo2.IEvaluator
}

type helperTag struct {
	token   *pongo2.Token
	name    pongo2.IEvaluator
	args    []pongo2.IEvaluator
	kwargs  []kwarg
	wrapper *pongo2.NodeWrapper
}

func parseInlineTag(doc *pongo2.Parser, start *pongo2.Token, arguments *pongo2.Parser) (pongo2.INodeTag, *pongo2.Error) {
	return parseHelperArgs(start, arguments)
}

func parseBlockTag(doc *pongo2.Parser, start *pongo2.Token, arguments *pongo2.Parser) (pongo2.INodeTag, *pongo2.Error) {
	node, err := parseHelperArgs(start, arguments)
	if err != nil {
		return nil, err
	}

	wrapper, endArgs, err := doc.WrapUntilTag("endformblock")
	if err != nil {
		return nil, err
	}
	if endArgs.Count() > 0 {
		return nil, endArgs.Error("'endformblock' takes no arguments.", nil)
	}
	node.wrapper = wrapper
	return node, nil
}

func parseHelperArgs(start *pongo2.Token, arguments *pongo2.Parser) (*helperTag, *pongo2.Error) {
	node := &helperTag{token: start}

	name, err := arguments.ParseExpression()
	if err != nil {
		return nil, err
	}
	node.name = name

	for arguments.Remaining() > 0 {
		if isKwarg(arguments) {
			key := arguments.Current().Val
			arguments.ConsumeN(2)
			expr, err := arguments.ParseExpression()
			if err != nil {
				return nil, err
			}
			node.kwargs = append(node.kwargs, kwarg{key: key, expr: expr})
			continue
		}
		if len(node.kwargs) > 0 {
			return nil, arguments.Error("Positional arguments must come before key=value pairs.", nil)
		}
		expr, err := arguments.ParseExpression()
		if err != nil {
			return nil, err
		}
		node.args = append(node.args, expr)
	}

	return node, nil
}

func isKwarg(arguments *pongo2.Parser) bool {
	if arguments.PeekN(1, pongo2.TokenSymbol, "=") == nil {
		return false
	}
	return arguments.PeekTypeN(0, pongo2.TokenIdentifier) != nil ||
		arguments.PeekTypeN(0, pongo2.TokenKeyword) != nil
}

func (node *helperTag) Execute(ctx *pongo2.ExecutionContext, writer pongo2.TemplateWriter) *pongo2.Error {
	table, ok := ctx.Public[tableKey].(*helpers.Table)
	if !ok {
		return ctx.Error("form helpers are not available in this template set", node.token)
	}

	name, perr := node.name.Evaluate(ctx)
	if perr != nil {
		return perr
	}

	args := make([]any, 0, len(node.args))
	for _, expr := range node.args {
		value, perr := expr.Evaluate(ctx)
		if perr != nil {
			return perr
		}
		args = append(args, value.Interface())
	}

	var hash markup.Attrs
	for _, kw := range node.kwargs {
		value, perr := kw.expr.Evaluate(ctx)
		if perr != nil {
			return perr
		}
		hash.Set(kw.key, value.Interface())
	}

	opts := helpers.Options{Hash: hash, Context: map[string]any(ctx.Public)}
	if node.wrapper != nil {
		opts.Fn = node.blockFunc(ctx)
	}

	out, err := table.Call(name.String(), args, opts)
	if err != nil {
		return ctx.OrigError(err, node.token)
	}
	if _, err := writer.WriteString(string(out)); err != nil {
		return ctx.OrigError(err, node.token)
	}
	return nil
}

// blockFunc renders the tag body. A non-nil ctx is bound to "this".
func (node *helperTag) blockFunc(parent *pongo2.ExecutionContext) helpers.BlockFunc {
	return func(data any) (string, error) {
		child := pongo2.NewChildExecutionContext(parent)
		if data != nil {
			child.Private["this"] = data
		}

		var buf bytes.Buffer
		if perr := node.wrapper.Execute(child, &buf); perr != nil {
			return "", perr
		}
		return buf.String(), nil
	}
}
