package manifest

import "github.com/Quincunx271/meta-dds/internal/json5"

// StripMeta returns the document without its meta_dds entries, which is
// exactly the package.json that plain dds consumes. All other members keep
// their order. Non-object nodes come back unchanged.
func StripMeta(n json5.Node) json5.Node {
	if !n.IsObject() {
		return n
	}
	var members []json5.Member
	for _, m := range n.Members() {
		if m.Key == "meta_dds" {
			continue
		}
		members = append(members, m)
	}
	return json5.NewObject(members...)
}
