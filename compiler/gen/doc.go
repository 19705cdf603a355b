// Package gen turns Myra UI layout documents into typed accessor classes.
//
// # Architecture
//
// One generation run follows this flow:
//
//	candidates ([]*load.Candidate)
//	        ↓
//	ResolveConfig (namespace, directory pattern; once per run)
//	        ↓
//	load.Select (layout documents under the directory pattern)
//	        ↓
//	per document: load.ParseDocument → load.ExtractWidgets → Dialect.Synthesize
//	        ↓
//	Result{Units, Diagnostics}
//
// Run never aborts because of a single document: a document that cannot be
// read, parsed or synthesized is reported with a MYRA001 diagnostic and
// skipped. The caller decides what to do with the diagnostics.
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	config, err := gen.NewConfig(
//	    gen.WithDialect(csharp.NewDialect()),
//	    gen.WithGlobalOption(gen.KeyNamespace, "MyGame.UI"),
//	)
//
// Two values are resolved per run, each from the first non-blank source:
//
//	myra_ui_generator.namespace          (default "GeneratedUI")
//	myra_ui_generator.xml_directory      (default "Content/UI")
//
// The sources are the global options, the global options under the
// build-property form of the key (build_property.MyraUIGenerator_namespace),
// and the options scoped to each input in input order.
//
// # Diagnostics
//
//	MYRA001  warning  a document was skipped because processing it failed
//	MYRA002  info     run started; resolved configuration and input count
//	MYRA003  info     number of selected layout documents
//	MYRA004  info     accessor class generated; widget count
//	MYRA005  info     a selected document has no identified widgets
//	MYRA999  error    the run failed outside of document processing
//
// # Dialects
//
// The accessor class is rendered by a Dialect. The csharp dialect writes
// <Name>UI.g.cs and the golang dialect writes <Name>UI.g.go. Generated files
// are written to disk by a Writer.
package gen
