package types

import "html/template"

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Type    string
	Message string
}

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

type NavbarData struct {
	Lang        string
	Dir         string
	OtherLang   string
	CurrentPath string
	CSRFField   template.HTML
	Flashes     []Flash
	IsAdmin     bool
	AdminEmail  string
}

type NavbarDataSetter interface {
	SetNavbarData(data NavbarData)
}

type BasePageData struct {
	Title  string
	Navbar NavbarData
}

func (d *BasePageData) SetNavbarData(data NavbarData) {
	d.Navbar = data
}
