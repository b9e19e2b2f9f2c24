// Package hclspec loads pipeline definitions from HCL files. A definition
// file declares one pipeline block holding ordered node blocks:
//
//	pipeline "churn" {
//	  seed = 42
//
//	  node "Imputer" {
//	    component = "Imputer"
//	    inputs    = ["X", "y"]
//	    parameters = {
//	      numeric_impute_strategy = "median"
//	    }
//	  }
//
//	  node "Linear Regressor" {
//	    component = "Linear Regressor"
//	    inputs    = ["Imputer.x", "y"]
//	  }
//	}
//
// Node order in the file is declaration order, which fixes the scheduling
// tie-break for independent branches.
package hclspec
