// Package toxotype provides a toxinotype classification engine for bacterial
// assemblies aligned against a protein toxin reference database.
//
// Quick start:
//
//	typer, err := toxotype.New(toxotype.WithRuleFile("toxinotypes.tsv"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, _ := typer.Type("sample-01", alignmentLines)
//	fmt.Println(result.Code) // e.g. "I"
//
// A Typer is safe for concurrent use across samples: the rule table is
// read-only and each Type call keeps its own state.
package toxotype
