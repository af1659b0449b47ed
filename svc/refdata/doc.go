// Package refdata serves the countries, Chilean regions and communes, author
// societies and author classes offered by the request forms.
//
// The lists come from three JSON files (paises.json, regionesycomunas.json and
// sociedades.json) read from any fs.FS, normally the embedded assets:
//
//	store := refdata.NewStore(assets.FS(""), assets.DataDir)
//	regions, err := store.Regions()
package refdata
