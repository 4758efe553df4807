// Package i18n loads localized message catalogs and picks a language per
// request.
//
// Catalog files are YAML or JSON documents keyed by language code. Nested keys
// are flattened with dots:
//
//	en:
//	  validation:
//	    required: "The %s field is required"
//	tr:
//	  validation:
//	    required: "%s alanı gereklidir"
//
// Files are read through an Adapter: MapAdapter for in-memory data,
// FileAdapter for a single file, FSAdapter for a directory inside any fs.FS
// (embed.FS included) and NewDirectoryAdapter for a directory on disk.
//
// # Usage
//
//	catalogs, err := i18n.NewCatalogs(ctx,
//		i18n.NewFSAdapter(nil, locales.FS, "."),
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithPrefix("validation"),
//	)
//	if err != nil {
//		return err
//	}
//
//	messages := catalogs.Messages("tr-TR,tr;q=0.9,en;q=0.5")
//	// messages["required"] == "%s alanı gereklidir"
//
// Messages of the default language fill every gap of the other languages, so
// a partial translation never leaves a key without text.
//
// # HTTP
//
// Middleware negotiates the language for each request and stores it in the
// context, where GetLocale reads it:
//
//	r.Use(i18n.Middleware(catalogs, i18n.DefaultLangExtractor()))
//
// DefaultLangExtractor checks the "lang" cookie, then the "lang" query
// parameter, then the Accept-Language header.
package i18n
