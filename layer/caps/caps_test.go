// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package caps_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/vkstate/core/assert"
	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/caps"
	"github.com/google/vkstate/layer/vulkan"
)

func TestDefaultProfile(t *testing.T) {
	ctx := log.Testing(t)
	p := caps.NewStatic(caps.Default())

	assert.For(ctx, "devices").That(p.PhysicalDeviceCount()).Equals(uint32(1))
	assert.For(ctx, "families").ThatSlice(p.QueueFamilyProperties()).IsLength(3)
	assert.For(ctx, "graphics").That(caps.QueueFamilyFlags(p, 0)&
		vulkan.VkQueueFlags(vulkan.VkQueueFlagBits_VK_QUEUE_GRAPHICS_BIT)).Equals(
		vulkan.VkQueueFlags(vulkan.VkQueueFlagBits_VK_QUEUE_GRAPHICS_BIT))
	assert.For(ctx, "out of range family").That(caps.QueueFamilyFlags(p, 7)).Equals(vulkan.VkQueueFlags(0))
	assert.For(ctx, "present family 0").That(p.SurfaceSupport(0, 5)).Equals(true)
	assert.For(ctx, "present family 1").That(p.SurfaceSupport(1, 5)).Equals(false)
	assert.For(ctx, "any").That(caps.AnySurfaceSupport(p, 5)).Equals(true)
	assert.For(ctx, "sync2").That(p.HasExtension(vulkan.VK_KHR_synchronization2)).Equals(true)
	assert.For(ctx, "present id").That(p.HasExtension(vulkan.VK_KHR_present_id)).Equals(false)

	c := p.SurfaceCapabilities(5)
	assert.For(ctx, "min images").That(c.MinImageCount).Equals(uint32(2))
	assert.For(ctx, "extent").That(c.CurrentExtent).Equals(vulkan.VkExtent2D{Width: 1280, Height: 720})

	depth := p.FormatProperties(vulkan.VkFormat_VK_FORMAT_D24_UNORM_S8_UINT)
	assert.For(ctx, "depth linear").That(depth.LinearTilingFeatures).Equals(vulkan.VkFormatFeatureFlags(0))
	colour := p.FormatProperties(vulkan.VkFormat_VK_FORMAT_B8G8R8A8_UNORM)
	assert.For(ctx, "colour optimal").That(colour.OptimalTilingFeatures&
		vulkan.VkFormatFeatureFlags(vulkan.VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_COLOR_ATTACHMENT_BIT)).Equals(
		vulkan.VkFormatFeatureFlags(vulkan.VkFormatFeatureFlagBits_VK_FORMAT_FEATURE_COLOR_ATTACHMENT_BIT))

	assert.For(ctx, "plane displays").ThatSlice(p.DisplayPlaneSupportedDisplays(0)).Equals([]vulkan.VkDisplayKHR{1})
	assert.For(ctx, "missing plane").ThatSlice(p.DisplayPlaneSupportedDisplays(3)).IsEmpty()
}

func TestSurfaceOverride(t *testing.T) {
	ctx := log.Testing(t)
	prof := caps.Default()
	o := prof.Surface
	o.Handle = 9
	o.MinImageCount = 3
	o.PresentFamilies = []uint32{1}
	o.Protected = true
	prof.Surfaces = append(prof.Surfaces, o)
	p := caps.NewStatic(prof)

	assert.For(ctx, "override min").That(p.SurfaceCapabilities(9).MinImageCount).Equals(uint32(3))
	assert.For(ctx, "other min").That(p.SurfaceCapabilities(8).MinImageCount).Equals(uint32(2))
	assert.For(ctx, "override family 0").That(p.SurfaceSupport(0, 9)).Equals(false)
	assert.For(ctx, "override family 1").That(p.SurfaceSupport(1, 9)).Equals(true)
	assert.For(ctx, "protected").That(p.ProtectedSurface(9)).Equals(true)
	assert.For(ctx, "unprotected").That(p.ProtectedSurface(8)).Equals(false)
}

func TestLoadProfile(t *testing.T) {
	ctx := log.Testing(t)
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "phone.yaml")
	assert.For(ctx, "write yaml").ThatError(os.WriteFile(yamlPath, []byte(`
name: phone
extensions: [VK_KHR_present_id, VK_KHR_shared_presentable_image]
features:
  present_id: true
surface:
  min_image_count: 3
  max_image_count: 3
  current_transform: 2
image_format:
  max_width: 4096
  max_height: 4096
  max_mip_levels: 13
  max_array_layers: 256
  unsupported: [97]
`), 0666)).Succeeded()

	p, err := caps.Load(yamlPath)
	assert.For(ctx, "load yaml").ThatError(err).Succeeded()
	assert.For(ctx, "name").That(p.Profile().Name).Equals("phone")
	assert.For(ctx, "present id").That(p.Features().PresentID).Equals(true)
	assert.For(ctx, "shared").That(p.HasExtension(vulkan.VK_KHR_shared_presentable_image)).Equals(true)
	c := p.SurfaceCapabilities(1)
	assert.For(ctx, "min").That(c.MinImageCount).Equals(uint32(3))
	assert.For(ctx, "transform").That(c.CurrentTransform).Equals(
		vulkan.VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_ROTATE_90_BIT_KHR)
	assert.For(ctx, "default formats kept").ThatSlice(p.SurfaceFormats(1)).IsLength(3)

	_, res := p.ImageFormatProperties(vulkan.VkFormat_VK_FORMAT_R16G16B16A16_SFLOAT, vulkan.VkImageType_VK_IMAGE_TYPE_2D,
		vulkan.VkImageTiling_VK_IMAGE_TILING_OPTIMAL, 0, 0)
	assert.For(ctx, "unsupported").That(res).Equals(vulkan.VkResult_VK_ERROR_FORMAT_NOT_SUPPORTED)
	props, res := p.ImageFormatProperties(vulkan.VkFormat_VK_FORMAT_B8G8R8A8_UNORM, vulkan.VkImageType_VK_IMAGE_TYPE_2D,
		vulkan.VkImageTiling_VK_IMAGE_TILING_OPTIMAL, 0, 0)
	assert.For(ctx, "supported").That(res).Equals(vulkan.VkResult_VK_SUCCESS)
	assert.For(ctx, "layers").That(props.MaxArrayLayers).Equals(uint32(256))

	tomlPath := filepath.Join(dir, "multi.toml")
	assert.For(ctx, "write toml").ThatError(os.WriteFile(tomlPath, []byte(`
name = "multi"
physical_devices = 2
`), 0666)).Succeeded()
	p, err = caps.Load(tomlPath)
	assert.For(ctx, "load toml").ThatError(err).Succeeded()
	assert.For(ctx, "devices").That(p.PhysicalDeviceCount()).Equals(uint32(2))
	assert.For(ctx, "families kept").ThatSlice(p.QueueFamilyProperties()).IsLength(3)
}
