package sddl

import (
	chk "gopkg.in/check.v1"
)

func (s *GoSDDLTestSuite) TestNamedFileSystemRights(c *chk.C) {
	namedTests := []struct {
		input  ACERights
		result []string
	}{
		{ // full file access, by the composite mask
			input:  EACERights.SDDL_FILE_ALL(),
			result: []string{"FullControl"},
		},
		{ // full file access, by the generic bit
			input:  EACERights.SDDL_GENERIC_ALL(),
			result: []string{"FullControl"},
		},
		{ // read+write collapses to Modify
			input:  EACERights.SDDL_FILE_READ() | EACERights.SDDL_FILE_WRITE(),
			result: []string{"Modify"},
		},
		{
			input:  EACERights.SDDL_FILE_READ(),
			result: []string{"Read"},
		},
		{
			input:  EACERights.SDDL_FILE_WRITE(),
			result: []string{"Write"},
		},
		{ // an empty mask doesn't decompose; falls back to hex
			input:  EACERights.NO_RIGHTS(),
			result: []string{"0x0"},
		},
	}

	for _, v := range namedTests {
		c.Assert(v.input.NamedFileSystemRights(), chk.DeepEquals, v.result)
	}
}

func (s *GoSDDLTestSuite) TestACERightsString(c *chk.C) {
	stringTests := []struct {
		input  ACERights
		result string
	}{
		{
			input:  EACERights.NO_RIGHTS(),
			result: "0x0",
		},
		{
			input:  EACERights.SDDL_GENERIC_READ(),
			result: "0x80000000",
		},
		{ // composite masks render as their raw value
			input:  EACERights.SDDL_FILE_ALL(),
			result: "0x1F01FF",
		},
	}

	for _, v := range stringTests {
		c.Assert(v.input.String(), chk.Equals, v.result)
	}
}
