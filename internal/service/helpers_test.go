package service

import "support-chat-be/pkg/brand"

func testBrands() *brand.Registry {
	return brand.NewRegistry("testdata/prompts", "testdata/knowledge")
}
