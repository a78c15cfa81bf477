package rewrite

import (
	"regexp"
	"strings"
)

const (
	ClientDirective   = `"use client";`
	StoreImport       = "import { useAppStore } from '@/store/appStore';"
	storeImportSource = "from '@/store/appStore'"
	storeAccessorCall = "useAppStore()"
)

// Rule is one pure text transform. Rules run in the order Rules returns
// them and each one sees the output of the previous.
type Rule struct {
	Name        string
	Description string
	Apply       func(string) string
}

func routerImportPattern(hook string) *regexp.Regexp {
	return regexp.MustCompile(`import\s+\{[^}]*` + hook + `[^}]*\}\s+from\s+['"]react-router-dom['"];?`)
}

var (
	navigateImportRe  = routerImportPattern("useNavigate")
	outletImportRe    = routerImportPattern("useOutletContext")
	paramsImportRe    = routerImportPattern("useParams")
	navigateBindingRe = regexp.MustCompile(`const navigate = useNavigate\(\);?`)
	navigateCallRe    = regexp.MustCompile(`navigate\((['"][^'"]+['"])\)`)
	parentRelativeRe  = regexp.MustCompile(`from (['"])\.\./`)
	siblingRelativeRe = regexp.MustCompile(`from (['"])\./`)
	outletContextRe   = regexp.MustCompile(`const \{ ([^}]+) \} = useOutletContext<[^>]+>\(\);?`)
	firstImportRe     = regexp.MustCompile(`(import [^;]+;)\n`)
)

func replaceWith(re *regexp.Regexp, template string) func(string) string {
	return func(s string) string {
		return re.ReplaceAllString(s, template)
	}
}

var rules = []Rule{
	{
		Name:        "use-client",
		Description: `prepend the "use client" directive unless already present`,
		Apply:       ensureClientDirective,
	},
	{
		Name:        "navigate-import",
		Description: "replace the react-router useNavigate import with next/navigation useRouter",
		Apply:       replaceWith(navigateImportRe, "import { useRouter } from 'next/navigation';"),
	},
	{
		Name:        "outlet-import",
		Description: "drop the react-router useOutletContext import",
		Apply:       replaceWith(outletImportRe, ""),
	},
	{
		Name:        "params-import",
		Description: "replace the react-router useParams import with next/navigation useParams and useRouter",
		Apply:       replaceWith(paramsImportRe, "import { useParams, useRouter } from 'next/navigation';"),
	},
	{
		Name:        "navigate-binding",
		Description: "rewrite `const navigate = useNavigate()` to `const router = useRouter()`",
		Apply:       replaceWith(navigateBindingRe, "const router = useRouter();"),
	},
	{
		Name:        "navigate-call",
		Description: "rewrite navigate(\"literal\") calls to router.push(\"literal\")",
		Apply:       replaceWith(navigateCallRe, "router.push(${1})"),
	},
	{
		Name:        "parent-relative-import",
		Description: "rewrite `from '../` imports to the @/ alias",
		Apply:       replaceWith(parentRelativeRe, "from ${1}@/"),
	},
	{
		Name:        "sibling-relative-import",
		Description: "rewrite `from './` imports to the @/components/ alias",
		Apply:       replaceWith(siblingRelativeRe, "from ${1}@/components/"),
	},
	{
		Name:        "outlet-context",
		Description: "source useOutletContext destructuring from useAppStore()",
		Apply:       replaceWith(outletContextRe, "const { ${1} } = useAppStore();"),
	},
	{
		Name:        "store-import",
		Description: "import useAppStore after the first import when it is called but not imported",
		Apply:       ensureStoreImport,
	},
}

// Rules returns a copy of the ordered rule set.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

func ensureClientDirective(s string) string {
	if strings.HasPrefix(s, `"use client"`) || strings.HasPrefix(s, `'use client'`) {
		return s
	}
	return ClientDirective + "\n\n" + s
}

func ensureStoreImport(s string) string {
	if !strings.Contains(s, storeAccessorCall) || strings.Contains(s, storeImportSource) {
		return s
	}

	loc := firstImportRe.FindStringIndex(s)
	if loc == nil {
		return s
	}

	end := loc[1]
	return s[:end] + StoreImport + "\n" + s[end:]
}
