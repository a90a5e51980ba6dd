// Package nav implements the navigation state machine: action tokens carried
// by inline buttons, menu rendering, and the controller that turns a button
// press into the next screen. Navigation is stateless: every token encodes
// the full path, and each press rebuilds its state from the token alone.
package nav

// Kind discriminates the navigation state variants.
type Kind int

const (
	// KindRoot is the category list screen.
	KindRoot Kind = iota
	// KindCategory is the subcategory list of one category.
	KindCategory
	// KindSubcategory is the channel list of one subcategory.
	KindSubcategory
	// KindChannel is the leaf state producing an invite.
	KindChannel
)

// State is the semantic payload of an action token. It is reconstructed
// from each incoming token and discarded after the screen is produced.
type State struct {
	Kind        Kind
	Category    string
	Subcategory string
	ChannelLink string
}

// Root returns the root navigation state.
func Root() State {
	return State{Kind: KindRoot}
}

// AtCategory returns the state pointing at one category.
func AtCategory(category string) State {
	return State{Kind: KindCategory, Category: category}
}

// AtSubcategory returns the state pointing at one subcategory.
func AtSubcategory(category, subcategory string) State {
	return State{Kind: KindSubcategory, Category: category, Subcategory: subcategory}
}

// AtChannel returns the leaf state pointing at one channel link.
func AtChannel(category, subcategory, link string) State {
	return State{
		Kind:        KindChannel,
		Category:    category,
		Subcategory: subcategory,
		ChannelLink: link,
	}
}
