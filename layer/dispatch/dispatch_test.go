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

package dispatch_test

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/google/vkstate/core/assert"
	"github.com/google/vkstate/core/log"
	"github.com/google/vkstate/layer/caps"
	"github.com/google/vkstate/layer/dispatch"
	"github.com/google/vkstate/layer/layout"
	"github.com/google/vkstate/layer/registry"
	"github.com/google/vkstate/layer/report"
	"github.com/google/vkstate/layer/state"
	"github.com/google/vkstate/layer/vulkan"
)

const (
	queue     = vulkan.VkQueue(10)
	pool      = vulkan.VkCommandPool(20)
	cmdBuf    = vulkan.VkCommandBuffer(30)
	image     = vulkan.VkImage(40)
	surface   = vulkan.VkSurfaceKHR(100)
	swapchain = vulkan.VkSwapchainKHR(200)
	fence     = vulkan.VkFence(300)
	swapImage = vulkan.VkImage(500)
)

var (
	colorRange = vulkan.VkImageSubresourceRange{
		AspectMask: vulkan.VkImageAspectFlags(vulkan.VkImageAspectFlagBits_VK_IMAGE_ASPECT_COLOR_BIT),
		LevelCount: 1,
		LayerCount: 1,
	}
	undefined  = vulkan.VkImageLayout_VK_IMAGE_LAYOUT_UNDEFINED
	presentSrc = vulkan.VkImageLayout_VK_IMAGE_LAYOUT_PRESENT_SRC_KHR
)

// driver succeeds every call except those given a result, and reports three
// swapchain images.
type driver struct {
	results map[string]vulkan.VkResult
	calls   []string
}

func (d *driver) Call(ctx context.Context, cmd vulkan.Cmd) vulkan.VkResult {
	d.calls = append(d.calls, cmd.CmdName())
	if c, ok := cmd.(*vulkan.VkGetSwapchainImagesKHR); ok {
		if c.Images == nil {
			c.Count = 3
		} else {
			for i := range c.Images {
				c.Images[i] = swapImage + vulkan.VkImage(i)
			}
		}
	}
	if r, ok := d.results[cmd.CmdName()]; ok {
		return r
	}
	return vulkan.VkResult_VK_SUCCESS
}

type fixture struct {
	ctx    context.Context
	rep    *report.Collector
	driver *driver
	layer  *dispatch.Layer
}

func newFixture(t *testing.T, s report.Settings) *fixture {
	ctx := log.Testing(t)
	rep := report.NewCollector(s)
	dev := state.NewDevice(vulkan.VkDevice(1), caps.NewStatic(caps.Default()), rep)
	d := &driver{results: map[string]vulkan.VkResult{}}
	f := &fixture{ctx: ctx, rep: rep, driver: d, layer: dispatch.New(dev, d)}
	f.call(&vulkan.VkGetDeviceQueue{Queue: queue})
	f.call(&vulkan.VkCreateCommandPool{CommandPool: pool})
	f.call(&vulkan.VkAllocateCommandBuffers{
		AllocateInfo: vulkan.VkCommandBufferAllocateInfo{
			CommandPool:        pool,
			Level:              vulkan.VkCommandBufferLevel_VK_COMMAND_BUFFER_LEVEL_PRIMARY,
			CommandBufferCount: 1,
		},
		CommandBuffers: []vulkan.VkCommandBuffer{cmdBuf},
	})
	return f
}

func (f *fixture) call(cmd vulkan.Cmd) (vulkan.VkResult, error) {
	return f.layer.Call(f.ctx, cmd)
}

func (f *fixture) commandBuffer() *state.CommandBuffer {
	return registry.Get[*state.CommandBuffer](f.layer.Device().Registry(), cmdBuf)
}

func toPresent(img vulkan.VkImage) *vulkan.VkCmdPipelineBarrier {
	return &vulkan.VkCmdPipelineBarrier{
		CommandBuffer: cmdBuf,
		ImageMemoryBarriers: []vulkan.VkImageMemoryBarrier{{
			OldLayout:           undefined,
			NewLayout:           presentSrc,
			SrcQueueFamilyIndex: vulkan.VK_QUEUE_FAMILY_IGNORED,
			DstQueueFamilyIndex: vulkan.VK_QUEUE_FAMILY_IGNORED,
			Image:               img,
			SubresourceRange:    colorRange,
		}},
	}
}

func TestRecordAndSubmit(t *testing.T) {
	f := newFixture(t, report.DefaultSettings)
	f.call(&vulkan.VkCreateImage{Image: image, CreateInfo: vulkan.VkImageCreateInfo{
		Format:      vulkan.VkFormat_VK_FORMAT_R8G8B8A8_UNORM,
		Extent:      vulkan.VkExtent3D{Width: 16, Height: 16, Depth: 1},
		MipLevels:   1,
		ArrayLayers: 1,
	}})
	f.call(&vulkan.VkCreateFence{Fence: fence})
	f.call(&vulkan.VkBeginCommandBuffer{CommandBuffer: cmdBuf})
	f.call(toPresent(image))
	f.call(&vulkan.VkCmdSetViewport{CommandBuffer: cmdBuf, ViewportCount: 1})
	f.call(&vulkan.VkEndCommandBuffer{CommandBuffer: cmdBuf})

	cb := f.commandBuffer()
	ctx := f.ctx
	assert.For(ctx, "state").That(cb.State()).Equals(state.Recorded)
	assert.For(ctx, "commands").ThatInteger(cb.CommandCount()).Equals(2)
	bits, _, _ := cb.Status()
	assert.For(ctx, "viewport").ThatBoolean(bits&state.StatusViewport != 0).IsTrue()

	_, err := f.call(&vulkan.VkQueueSubmit{
		Queue:   queue,
		Submits: []vulkan.VkSubmitInfo{{CommandBuffers: []vulkan.VkCommandBuffer{cmdBuf}}},
		Fence:   fence,
	})
	assert.For(ctx, "submit").ThatError(err).Succeeded()
	m := f.layer.Device().Layouts().Snapshot(image)
	assert.For(ctx, "layout").That(m.CurrentLayout(layout.Subresource{
		Aspect: vulkan.VkImageAspectFlagBits_VK_IMAGE_ASPECT_COLOR_BIT,
	})).Equals(presentSrc)

	f.call(&vulkan.VkWaitForFences{Fences: []vulkan.VkFence{fence}, WaitAll: true, Timeout: vulkan.UINT64_MAX})
	f.call(&vulkan.VkResetFences{Fences: []vulkan.VkFence{fence}})
	assert.For(ctx, "errors").ThatInteger(f.rep.Errors()).Equals(0)
	assert.For(ctx, "driver calls").ThatInteger(len(f.driver.calls)).Equals(12)
}

func TestUnknownHandles(t *testing.T) {
	f := newFixture(t, report.DefaultSettings)
	ctx := f.ctx
	for _, test := range []struct {
		name string
		cmd  vulkan.Cmd
	}{
		{"command buffer", &vulkan.VkBeginCommandBuffer{CommandBuffer: 99}},
		{"recorded command", &vulkan.VkCmdDraw{CommandBuffer: 99}},
		{"queue", &vulkan.VkQueueSubmit{Queue: 99}},
		{"pool", &vulkan.VkFreeCommandBuffers{CommandPool: 99}},
	} {
		_, err := f.call(test.cmd)
		assert.For(ctx, test.name).That(status.Code(err)).Equals(codes.NotFound)
	}
	assert.For(ctx, "driver calls").ThatInteger(len(f.driver.calls)).Equals(3)
}

func TestBreakOnErrorSkipsCall(t *testing.T) {
	f := newFixture(t, report.Settings{BreakOnError: true, ReportWarnings: true})
	ctx := f.ctx
	f.call(&vulkan.VkBeginCommandBuffer{CommandBuffer: cmdBuf})
	calls := len(f.driver.calls)

	// Draws are only legal inside a render pass.
	res, err := f.call(&vulkan.VkCmdDraw{CommandBuffer: cmdBuf, VertexCount: 3, InstanceCount: 1})
	assert.For(ctx, "code").That(status.Code(err)).Equals(codes.FailedPrecondition)
	assert.For(ctx, "result").That(res).Equals(vulkan.VkResult_VK_ERROR_VALIDATION_FAILED_EXT)
	assert.For(ctx, "driver not called").ThatInteger(len(f.driver.calls)).Equals(calls)
	assert.For(ctx, "not recorded").ThatInteger(f.commandBuffer().CommandCount()).Equals(0)
	assert.For(ctx, "issue").ThatBoolean(f.rep.Has("VUID-vkCmdDraw-renderpass")).IsTrue()
}

func TestBreakOnListedVUID(t *testing.T) {
	f := newFixture(t, report.Settings{BreakOn: []string{"VUID-vkCmdDraw-None-02700"}, ReportWarnings: true})
	ctx := f.ctx
	f.call(&vulkan.VkCmdDispatch{CommandBuffer: cmdBuf})
	assert.For(ctx, "not recording").ThatBoolean(f.rep.Has("VUID-vkCmdDispatch-commandBuffer-recording")).IsTrue()
	assert.For(ctx, "forwarded").ThatString(f.driver.calls[len(f.driver.calls)-1]).Equals("vkCmdDispatch")
}

func TestFailedCreateIsNotTracked(t *testing.T) {
	f := newFixture(t, report.DefaultSettings)
	f.driver.results["vkCreateImage"] = vulkan.VkResult_VK_ERROR_OUT_OF_DEVICE_MEMORY
	res, err := f.call(&vulkan.VkCreateImage{Image: image})
	ctx := f.ctx
	assert.For(ctx, "error").ThatError(err).Succeeded()
	assert.For(ctx, "result").That(res).Equals(vulkan.VkResult_VK_ERROR_OUT_OF_DEVICE_MEMORY)
	img := registry.Get[*state.Image](f.layer.Device().Registry(), image)
	assert.For(ctx, "image").That(img).IsNil()
}

func TestPresentFrame(t *testing.T) {
	f := newFixture(t, report.DefaultSettings)
	ctx := f.ctx
	f.call(&vulkan.VkCreateHeadlessSurfaceEXT{Surface: surface})
	f.call(&vulkan.VkCreateSwapchainKHR{Swapchain: swapchain, CreateInfo: vulkan.VkSwapchainCreateInfoKHR{
		Surface:          surface,
		MinImageCount:    3,
		ImageFormat:      vulkan.VkFormat_VK_FORMAT_B8G8R8A8_UNORM,
		ImageColorSpace:  vulkan.VkColorSpaceKHR_VK_COLOR_SPACE_SRGB_NONLINEAR_KHR,
		ImageExtent:      vulkan.VkExtent2D{Width: 1280, Height: 720},
		ImageArrayLayers: 1,
		ImageUsage:       vulkan.VkImageUsageFlags(vulkan.VkImageUsageFlagBits_VK_IMAGE_USAGE_COLOR_ATTACHMENT_BIT),
		ImageSharingMode: vulkan.VkSharingMode_VK_SHARING_MODE_EXCLUSIVE,
		PreTransform:     vulkan.VkSurfaceTransformFlagBitsKHR_VK_SURFACE_TRANSFORM_IDENTITY_BIT_KHR,
		CompositeAlpha:   vulkan.VkCompositeAlphaFlagBitsKHR_VK_COMPOSITE_ALPHA_OPAQUE_BIT_KHR,
		PresentMode:      vulkan.VkPresentModeKHR_VK_PRESENT_MODE_FIFO_KHR,
		Clipped:          true,
	}})

	count := &vulkan.VkGetSwapchainImagesKHR{Swapchain: swapchain}
	f.call(count)
	assert.For(ctx, "count").ThatInteger(int(count.Count)).Equals(3)
	f.call(&vulkan.VkGetSwapchainImagesKHR{Swapchain: swapchain, Count: count.Count, Images: make([]vulkan.VkImage, count.Count)})
	sc := f.layer.WSI().Swapchain(swapchain)
	assert.For(ctx, "images").ThatInteger(len(sc.Images())).Equals(3)

	acquire := &vulkan.VkAcquireNextImageKHR{Swapchain: swapchain, Timeout: vulkan.UINT64_MAX, ImageIndex: 1}
	f.call(acquire)
	assert.For(ctx, "acquired").ThatInteger(int(sc.Acquired())).Equals(1)

	f.call(&vulkan.VkBeginCommandBuffer{CommandBuffer: cmdBuf})
	f.call(toPresent(swapImage + 1))
	f.call(&vulkan.VkEndCommandBuffer{CommandBuffer: cmdBuf})
	f.call(&vulkan.VkQueueSubmit{
		Queue:   queue,
		Submits: []vulkan.VkSubmitInfo{{CommandBuffers: []vulkan.VkCommandBuffer{cmdBuf}}},
	})
	_, err := f.call(&vulkan.VkQueuePresentKHR{Queue: queue, PresentInfo: vulkan.VkPresentInfoKHR{
		Swapchains:   []vulkan.VkSwapchainKHR{swapchain},
		ImageIndices: []uint32{1},
	}})
	assert.For(ctx, "present").ThatError(err).Succeeded()
	assert.For(ctx, "released").ThatInteger(int(sc.Acquired())).Equals(0)
	assert.For(ctx, "errors").ThatInteger(f.rep.Errors()).Equals(0)

	f.call(&vulkan.VkQueueWaitIdle{Queue: queue})
	f.call(&vulkan.VkDestroySwapchainKHR{Swapchain: swapchain})
	f.call(&vulkan.VkDestroySurfaceKHR{Surface: surface})
	assert.For(ctx, "errors after teardown").ThatInteger(f.rep.Errors()).Equals(0)
}

func TestDriverFunc(t *testing.T) {
	ctx := log.Testing(t)
	var seen vulkan.Cmd
	d := dispatch.DriverFunc(func(ctx context.Context, cmd vulkan.Cmd) vulkan.VkResult {
		seen = cmd
		return vulkan.VkResult_VK_TIMEOUT
	})
	dev := state.NewDevice(vulkan.VkDevice(1), caps.NewStatic(caps.Default()), report.Discard)
	cmd := &vulkan.VkDeviceWaitIdle{}
	res, err := dispatch.New(dev, d).Call(ctx, cmd)
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "result").That(res).Equals(vulkan.VkResult_VK_TIMEOUT)
	assert.For(ctx, "seen").That(seen).Equals(cmd)
}
